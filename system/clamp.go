package system

import (
	"github.com/lixenwraith/mars-base-one/component"
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/physics"
)

// ClampSystem rescales velocities above the terminal velocity to exactly the cap
type ClampSystem struct {
	TerminalVelocity float64
}

// Run returns the number of velocities clamped
func (s ClampSystem) Run(w *engine.World) int {
	n := 0
	w.Velocities.Each(func(_ core.Entity, vel *component.VelocityComponent) {
		if physics.CapSpeed(&vel.Vec, s.TerminalVelocity) {
			n++
		}
	})
	return n
}
