package system

import (
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/physics"
)

// VelocitySystem integrates position for every entity with both position and velocity
type VelocitySystem struct {
	Dt float64
}

// Run returns the number of entities moved
func (s VelocitySystem) Run(w *engine.World) int {
	entities := w.Query().With(w.Positions).With(w.Velocities).Execute()
	for _, e := range entities {
		pos, _ := w.Positions.Ptr(e)
		vel, _ := w.Velocities.Get(e)
		pos.Vec = physics.Integrate(pos.Vec, vel.Vec, s.Dt)
	}
	return len(entities)
}
