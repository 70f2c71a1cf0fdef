package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed simulation step used by the sandbox loop
	TickInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single simulated step after stalls
	MaxDeltaTime = 100 * time.Millisecond
)

// ECS Limits
const (
	// EventQueueSize is the initial capacity of the per-tick event queue
	EventQueueSize = 256

	// StoreInitialCapacity is the initial dense slice capacity of component stores
	StoreInitialCapacity = 64
)
