package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skillcast/event"
)

// Sink receives cues to play
type Sink interface {
	Play(c Cue)
}

// Player mixes cues onto the system speaker
// Play is safe from any goroutine; the speaker pulls from the mixer on its own goroutine
type Player struct {
	mu          sync.Mutex
	settings    Settings
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer(settings Settings) *Player {
	return &Player{settings: settings, mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := p.settings.SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue; a no-op before Init
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(c, p.settings)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences every pending cue
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// CueHandler turns world events into cues
type CueHandler struct {
	sink Sink
}

func NewCueHandler(sink Sink) *CueHandler {
	return &CueHandler{sink: sink}
}

func (h *CueHandler) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(eventCues))
	for t := range eventCues {
		types = append(types, t)
	}
	return types
}

func (h *CueHandler) HandleEvent(ev event.GameEvent) {
	if c, ok := CueForEvent(ev.Type); ok {
		h.sink.Play(c)
	}
}
