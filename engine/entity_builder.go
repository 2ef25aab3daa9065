package engine

import "github.com/lixenwraith/mars-base-one/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
//
// Example usage:
//
//	entity := engine.With(
//	    engine.With(world.NewEntity(), world.Positions, pos),
//	    world.Velocities, vel,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity allocates an entity and returns a builder for its components
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Build finalizes entity construction and returns the handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
