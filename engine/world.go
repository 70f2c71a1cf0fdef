package engine

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/event"
)

// World contains all entities and their components using typed stores
// Single-threaded: every method is called from the tick goroutine
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Stable identity index, resolved stable -> volatile
	identities map[core.PersistentID]core.Entity

	Components ComponentStore
	allStores  []AnyStore

	Resources *Resources

	// Commands is the world-owned deferred edit buffer, flushed once per tick
	Commands *Commands

	events   *event.EventQueue
	handlers map[event.EventType][]EventHandler
	systems  []System
}

// NewWorld creates a world with every component store initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		identities:   make(map[core.PersistentID]core.Entity),
		Resources:    newResources(),
		Commands:     NewCommands(),
		events:       event.NewEventQueue(),
		handlers:     make(map[event.EventType][]EventHandler),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// Log returns the world logger, never nil
func (w *World) Log() *zap.Logger {
	if w.Resources.Log == nil {
		return zap.NewNop()
	}
	return w.Resources.Log
}

// reserveEntityID allocates an id without marking it alive
func (w *World) reserveEntityID() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// CreateEntity allocates a live entity with no components
func (w *World) CreateEntity() core.Entity {
	id := w.reserveEntityID()
	w.alive[id] = struct{}{}
	return id
}

// Exists reports whether the entity is alive
func (w *World) Exists(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes an entity, all its components and its identity registration
// A skill root takes its contact and projection with it, and a member takes its root
// Destroying a dead entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Exists(e) {
		return
	}
	linked := w.linkedEntities(e)

	if id, ok := w.Components.Identity.GetComponent(e); ok {
		if w.identities[id.ID] == e {
			delete(w.identities, id.ID)
		}
	}
	for _, store := range w.allStores {
		store.RemoveComponent(e)
	}
	delete(w.alive, e)

	for _, other := range linked {
		w.DestroyEntity(other)
	}
}

// linkedEntities returns the entities whose lifetime is bound to e through skill ownership
func (w *World) linkedEntities(e core.Entity) []core.Entity {
	if group, ok := w.Components.SkillGroup.GetComponent(e); ok {
		return []core.Entity{group.Entities.Contact, group.Entities.Projection}
	}
	if member, ok := w.Components.SkillMember.GetComponent(e); ok {
		return []core.Entity{member.Root}
	}
	return nil
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.identities = make(map[core.PersistentID]core.Entity)
	for _, store := range w.allStores {
		store.ClearAllComponent()
	}
	w.Commands = NewCommands()
	w.events = event.NewEventQueue()
}

// === Identity ===

// AssignIdentity binds a persistent identity to a live entity
// Rebinding an identity moves it to the new entity, as on restore
func (w *World) AssignIdentity(e core.Entity, id core.PersistentID) {
	if !w.Exists(e) || id.IsZero() {
		return
	}
	if old, ok := w.Components.Identity.GetComponent(e); ok && old.ID != id {
		delete(w.identities, old.ID)
	}
	w.Components.Identity.SetComponent(e, component.IdentityComponent{ID: id})
	w.identities[id] = e
}

// Resolve maps a persistent identity to its current transient handle
func (w *World) Resolve(id core.PersistentID) (core.Entity, bool) {
	e, ok := w.identities[id]
	if !ok || !w.Exists(e) {
		return core.NoEntity, false
	}
	return e, true
}

// === Lookups (physics.ColliderSource) ===

// TransformOf returns the world pose of an entity
func (w *World) TransformOf(e core.Entity) (core.Transform, bool) {
	t, ok := w.Components.Transform.GetComponent(e)
	return t.Transform, ok
}

// SetTransform writes the world pose of an entity
func (w *World) SetTransform(e core.Entity, t core.Transform) {
	w.Components.Transform.SetComponent(e, component.TransformComponent{Transform: t})
}

// ColliderEntities returns every entity carrying a collider
func (w *World) ColliderEntities() []core.Entity {
	return w.Components.Collider.GetAllEntities()
}

// ColliderOf returns the collider of an entity
func (w *World) ColliderOf(e core.Entity) (component.ColliderComponent, bool) {
	return w.Components.Collider.GetComponent(e)
}

// === Systems & Events ===

// AddSystem registers a system, keeps systems sorted by priority,
// and registers it as an event handler when it implements EventHandler
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.AddEventHandler(h)
	}
}

// AddEventHandler subscribes a handler to its event types
func (w *World) AddEventHandler(h EventHandler) {
	for _, t := range h.EventTypes() {
		w.handlers[t] = append(w.handlers[t], h)
	}
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// DispatchEvents routes every pending event to its handlers
// Events pushed by handlers are routed in the same call
func (w *World) DispatchEvents() {
	for {
		pending := w.events.Consume()
		if len(pending) == 0 {
			return
		}
		for _, ev := range pending {
			for _, h := range w.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
	}
}

// Update advances the clock, routes pending events, and runs all systems in priority order
func (w *World) Update(dt time.Duration) {
	w.Resources.Time.DeltaTime = dt
	w.Resources.Time.FrameNumber++
	w.Resources.Time.Elapsed += dt

	w.DispatchEvents()

	for _, s := range w.systems {
		s.Update(dt)
	}
}
