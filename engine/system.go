package engine

import (
	"time"

	"github.com/lixenwraith/skillcast/event"
)

// System is one per-tick pass over matching entities
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// EventHandler receives routed events at the start of each tick
// Systems implementing it are registered automatically by AddSystem
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}
