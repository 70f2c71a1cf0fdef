package engine

import (
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/parameter"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
// Not synchronized: all access happens on the tick goroutine
type Store[T any] struct {
	components map[core.Entity]T
	index      map[core.Entity]int // Position in entities
	entities   []core.Entity       // Dense array of entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		index:      make(map[core.Entity]int),
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
	}
}

// SetComponent inserts or overwrites a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes the component of an entity, O(1) swap-remove
func (s *Store[T]) RemoveEntity(e core.Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.index[moved] = i
	s.entities = s.entities[:last]
	delete(s.index, e)
	delete(s.components, e)
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns a snapshot of all entities with this component
// Safe to mutate the store while iterating the result
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.components = make(map[core.Entity]T)
	s.index = make(map[core.Entity]int)
	s.entities = make([]core.Entity, 0, parameter.StoreInitialCapacity)
}

// AnyStore implementation

func (s *Store[T]) RemoveComponent(e core.Entity) { s.RemoveEntity(e) }
func (s *Store[T]) HasComponent(e core.Entity) bool { return s.HasEntity(e) }
func (s *Store[T]) CountEntity() int               { return s.CountEntities() }
func (s *Store[T]) ClearAllComponent()             { s.ClearAllComponents() }
