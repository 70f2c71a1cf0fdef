package event

import (
	"testing"

	"github.com/lixenwraith/skillcast/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if got := q.Consume(); got != nil {
		t.Fatalf("Expected nil from empty queue, got %v", got)
	}

	q.Push(GameEvent{Type: EventSkillSpawned, Frame: 1})
	q.Push(GameEvent{Type: EventGroundTargetPlaced, Frame: 1})
	q.Push(GameEvent{Type: EventCharacterMotionCompleted, Frame: 2})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	events := q.Consume()
	want := []EventType{EventSkillSpawned, EventGroundTargetPlaced, EventCharacterMotionCompleted}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventProjectileBlocked.String() != "ProjectileBlocked" {
		t.Errorf("Unexpected name %q", EventProjectileBlocked.String())
	}
	if EventType(9999).String() != "Unknown" {
		t.Errorf("Expected Unknown for unregistered type")
	}
}

func TestEventQueueKeepsOverflow(t *testing.T) {
	q := NewEventQueue()
	n := parameter.EventQueueSize*2 + 3
	for i := 0; i < n; i++ {
		q.Push(GameEvent{Type: EventSkillDespawned, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != n {
		t.Fatalf("Expected all %d events kept, got %d", n, len(events))
	}
	if events[0].Frame != 0 || events[n-1].Frame != int64(n-1) {
		t.Errorf("Expected FIFO order, got first %d last %d", events[0].Frame, events[n-1].Frame)
	}
}
