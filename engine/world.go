package engine

import (
	"github.com/lixenwraith/mars-base-one/component"
	"github.com/lixenwraith/mars-base-one/core"
)

// slot is one arena cell; generation increments on every destroy
type slot struct {
	generation uint32
	alive      bool
}

// World owns the entity arena and the typed component tables
// Handles are generation-checked: a destroyed entity's handle never resolves again,
// even after its slot is reused
type World struct {
	slots []slot
	free  []uint32
	alive int

	stores []AnyStore

	Positions  *Store[component.PositionComponent]
	Velocities *Store[component.VelocityComponent]
	Boxes      *Store[component.BoundingBoxComponent]
	Gravity    *Store[component.GravityComponent]
	Players    *Store[component.PlayerComponent]
	Elements   *Store[component.GameElementComponent]
}

// NewWorld creates an empty world with all component stores registered
func NewWorld() *World {
	w := &World{
		slots:      make([]slot, 0, 64),
		Positions:  NewStore[component.PositionComponent](),
		Velocities: NewStore[component.VelocityComponent](),
		Boxes:      NewStore[component.BoundingBoxComponent](),
		Gravity:    NewStore[component.GravityComponent](),
		Players:    NewStore[component.PlayerComponent](),
		Elements:   NewStore[component.GameElementComponent](),
	}
	w.stores = []AnyStore{w.Positions, w.Velocities, w.Boxes, w.Gravity, w.Players, w.Elements}
	return w
}

// CreateEntity allocates a handle, reusing a freed slot when available
func (w *World) CreateEntity() core.Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{generation: 1})
	}
	s := &w.slots[idx]
	s.alive = true
	w.alive++
	return core.NewEntity(idx, s.generation)
}

// Alive reports whether the handle names a live entity
func (w *World) Alive(e core.Entity) bool {
	idx := e.Index()
	if int(idx) >= len(w.slots) {
		return false
	}
	s := w.slots[idx]
	return s.alive && s.generation == e.Generation()
}

// DestroyEntity removes all components and retires the handle
// Returns false for stale or unknown handles
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.Alive(e) {
		return false
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
	s := &w.slots[e.Index()]
	s.alive = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	w.free = append(w.free, e.Index())
	w.alive--
	return true
}

// DestroyAll destroys every entity present in store
// Returns the number destroyed
func (w *World) DestroyAll(store AnyStore) int {
	n := 0
	for _, e := range store.All() {
		if w.DestroyEntity(e) {
			n++
		}
	}
	return n
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.alive
}

// Clear destroys every live entity
func (w *World) Clear() {
	for idx := range w.slots {
		s := w.slots[idx]
		if s.alive {
			w.DestroyEntity(core.NewEntity(uint32(idx), s.generation))
		}
	}
}
