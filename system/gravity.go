package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/physics"
)

// GravitySystem adds a fixed per-tick velocity delta to gravity-tagged entities
type GravitySystem struct {
	Gravity mgl64.Vec2
}

// Run returns the number of entities affected
func (s GravitySystem) Run(w *engine.World) int {
	entities := w.Query().With(w.Gravity).With(w.Velocities).Execute()
	for _, e := range entities {
		vel, _ := w.Velocities.Ptr(e)
		vel.Vec = physics.ApplyImpulse(vel.Vec, s.Gravity)
	}
	return len(entities)
}
