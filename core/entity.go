package core

import "fmt"

// Entity is a generation-checked handle into the world arena
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Generations start at 1, so the zero value never names a live entity
type Entity uint64

// NoEntity is the null handle
const NoEntity Entity = 0

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	if e == NoEntity {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
