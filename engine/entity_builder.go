package engine

import (
	"github.com/lixenwraith/skillcast/core"
)

// EntityBuilder stages components for an entity and commits them together
// The id is reserved immediately; the entity is not alive and no store is touched until Build
// A builder that is never built leaves nothing behind
//
// Example usage:
//
//	e := engine.With(engine.With(world.NewEntity(),
//	    world.Components.Transform, tc),
//	    world.Components.Collider, col).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	staged []func()
	built  bool
}

// NewEntity creates a builder with a reserved entity id
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.reserveEntityID(),
	}
}

// Entity returns the reserved id, valid to reference before Build
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With stages a component of type T for the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.staged = append(eb.staged, func() {
		store.SetComponent(e, component)
	})
	return eb
}

// Build marks the entity alive and commits every staged component
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	eb.world.alive[eb.entity] = struct{}{}
	for _, apply := range eb.staged {
		apply()
	}
	eb.staged = nil
	return eb.entity
}
