package event

import "github.com/lixenwraith/skillcast/parameter"

// EventQueue is a single-threaded FIFO of game events
// Producers and the consumer all run on the tick goroutine
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, parameter.EventQueueSize)
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
