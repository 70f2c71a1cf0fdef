package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skillcast/event"
)

// Cue is a short sound bound to a skill event
type Cue int

const (
	CueSpawn Cue = iota
	CueSpawnFailed
	CuePlaced
	CueBlocked
	CueExpired
	CueMotionDone
)

var cueNames = map[Cue]string{
	CueSpawn:       "spawn",
	CueSpawnFailed: "spawn_failed",
	CuePlaced:      "placed",
	CueBlocked:     "blocked",
	CueExpired:     "expired",
	CueMotionDone:  "motion_done",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

var eventCues = map[event.EventType]Cue{
	event.EventSkillSpawned:             CueSpawn,
	event.EventSkillSpawnFailed:         CueSpawnFailed,
	event.EventGroundTargetPlaced:       CuePlaced,
	event.EventProjectileBlocked:        CueBlocked,
	event.EventProjectileExpired:        CueExpired,
	event.EventCharacterMotionCompleted: CueMotionDone,
}

// CueForEvent maps an event to its cue
func CueForEvent(t event.EventType) (Cue, bool) {
	c, ok := eventCues[t]
	return c, ok
}

// Settings controls cue synthesis
type Settings struct {
	SampleRate beep.SampleRate
	Volume     float64 // Linear master volume, 0 mutes
}

func DefaultSettings() Settings {
	return Settings{SampleRate: beep.SampleRate(44100), Volume: 0.5}
}

// Duration returns the length of a cue
func (c Cue) Duration() time.Duration {
	switch c {
	case CueSpawn:
		return 140 * time.Millisecond
	case CueSpawnFailed:
		return 120 * time.Millisecond
	case CuePlaced:
		return 180 * time.Millisecond
	case CueBlocked:
		return 90 * time.Millisecond
	case CueExpired:
		return 220 * time.Millisecond
	case CueMotionDone:
		return 40 * time.Millisecond
	}
	return 0
}

// Streamer synthesizes a cue; nil for unknown cues
func Streamer(c Cue, s Settings) beep.Streamer {
	rate := s.SampleRate
	d := c.Duration()

	var voice beep.Streamer
	switch c {
	case CueSpawn:
		// Rising sweep
		voice = NewEnvelope(NewGlide(440, 880, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
	case CueSpawnFailed:
		voice = NewEnvelope(NewTone(110, d, WaveSaw, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate)
	case CuePlaced:
		// Low thump with an octave on top
		half := d / 2
		low := NewEnvelope(NewGlide(160, 60, d, WaveSine, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
		high := NewEnvelope(NewTone(320, half, WaveSine, rate), half, 2*time.Millisecond, 60*time.Millisecond, rate)
		voice = beep.Mix(withVolume(low, 0.7), withVolume(high, 0.3))
	case CueBlocked:
		voice = NewEnvelope(NewTone(0, d, WaveNoise, rate), d, time.Millisecond, 70*time.Millisecond, rate)
	case CueExpired:
		voice = NewEnvelope(NewGlide(660, 330, d, WaveSine, rate), d, 10*time.Millisecond, 180*time.Millisecond, rate)
	case CueMotionDone:
		voice = NewEnvelope(NewTone(1200, d, WaveSquare, rate), d, time.Millisecond, 30*time.Millisecond, rate)
	default:
		return nil
	}
	return withVolume(voice, s.Volume)
}
