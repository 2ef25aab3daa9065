package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/event"
	"github.com/lixenwraith/mars-base-one/physics"
)

// impulseAccum is the per-target sum for one tick
type impulseAccum struct {
	target   core.Entity
	delta    mgl64.Vec2
	absolute mgl64.Vec2
	hasAbs   bool
}

// ImpulseSystem sums a tick's impulses per target and applies them to velocity
// Additive impulses are summed first; an absolute impulse then replaces the velocity
// Scratch buffers are reused across ticks
type ImpulseSystem struct {
	accums []impulseAccum
	index  map[core.Entity]int
}

// NewImpulseSystem creates an impulse summation step
func NewImpulseSystem() *ImpulseSystem {
	return &ImpulseSystem{
		accums: make([]impulseAccum, 0, 16),
		index:  make(map[core.Entity]int),
	}
}

// Run applies impulses in insertion order of first appearance per target
// Impulses for dead handles or entities without velocity are dropped silently
func (s *ImpulseSystem) Run(w *engine.World, impulses []event.ImpulsePayload) (applied, dropped int) {
	s.accums = s.accums[:0]
	clear(s.index)

	for _, imp := range impulses {
		if !w.Alive(imp.Target) || !w.Velocities.HasEntity(imp.Target) {
			dropped++
			continue
		}

		i, ok := s.index[imp.Target]
		if !ok {
			i = len(s.accums)
			s.index[imp.Target] = i
			s.accums = append(s.accums, impulseAccum{target: imp.Target})
		}

		acc := &s.accums[i]
		if imp.Absolute {
			// Last absolute impulse in the tick wins
			acc.absolute = imp.Amount
			acc.hasAbs = true
		} else {
			acc.delta = acc.delta.Add(imp.Amount)
		}
		applied++
	}

	for i := range s.accums {
		acc := &s.accums[i]
		vel, _ := w.Velocities.Ptr(acc.target)
		vel.Vec = physics.ApplyImpulse(vel.Vec, acc.delta)
		if acc.hasAbs {
			vel.Vec = physics.SetImpulse(vel.Vec, acc.absolute)
		}
	}

	return applied, dropped
}
