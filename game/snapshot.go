package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/component"
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/vmath"
)

// Body is the render view of one positioned entity
type Body struct {
	Entity   core.Entity
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Bounds   vmath.Rect // zero for entities without a bounding box
	Player   bool
}

// Snapshot is a copy of post-tick state the host can read without touching the world
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Bodies []Body
	Player *Body
}

// Snapshot copies every positioned entity in position store order
func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:   s.tick,
		Phase:  s.machine.Current(),
		Bodies: make([]Body, 0, w.Positions.Count()),
	}

	w.Positions.Each(func(e core.Entity, pos *component.PositionComponent) {
		b := Body{Entity: e, Position: pos.Vec, Player: w.Players.HasEntity(e)}
		if vel, ok := w.Velocities.Get(e); ok {
			b.Velocity = vel.Vec
		}
		if box, ok := w.Boxes.Get(e); ok {
			b.Bounds = box.At(pos.Vec)
		}
		snap.Bodies = append(snap.Bodies, b)
	})

	for i := range snap.Bodies {
		if snap.Bodies[i].Entity == s.player {
			snap.Player = &snap.Bodies[i]
			break
		}
	}
	return snap
}
