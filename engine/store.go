package engine

import (
	"github.com/lixenwraith/mars-base-one/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip every component of a destroyed entity
type AnyStore interface {
	// RemoveEntity deletes the component of an entity if present
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// All returns a copy of the entities with this component
	All() []core.Entity

	// Clear removes all components from this store
	Clear()
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern: dense value slice, parallel owner slice, index map
// Not safe for concurrent use; owned by the simulation loop
type Store[T any] struct {
	dense  []T
	owners []core.Entity
	index  map[core.Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		dense:  make([]T, 0, 64),
		owners: make([]core.Entity, 0, 64),
		index:  make(map[core.Entity]int),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.owners = append(s.owners, e)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.dense[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the stored component for in-place mutation
// Valid until the next Set or RemoveEntity on this store
func (s *Store[T]) Ptr(e core.Entity) (*T, bool) {
	if i, ok := s.index[e]; ok {
		return &s.dense[i], true
	}
	return nil, false
}

// RemoveEntity deletes a component from an entity, swap-removing from the dense arrays
func (s *Store[T]) RemoveEntity(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.owners[i] = s.owners[last]
		s.index[s.owners[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.index, e)
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// All returns all entities with this component type in dense order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.owners))
	copy(result, s.owners)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.owners)
}

// Each visits every component in dense order with a mutable pointer
// fn must not add or remove components of this store
func (s *Store[T]) Each(fn func(e core.Entity, val *T)) {
	for i := range s.dense {
		fn(s.owners[i], &s.dense[i])
	}
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.dense = s.dense[:0]
	s.owners = s.owners[:0]
	s.index = make(map[core.Entity]int)
}
