package system

import (
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/vmath"
)

// BoundaryPolicy reports player entities whose position lies outside Bounds
// Read-only: it never mutates the world
type BoundaryPolicy struct {
	Bounds vmath.Rect
}

// Check returns the players out of bounds
// Positions on the edge are in bounds
func (b BoundaryPolicy) Check(w *engine.World) []core.Entity {
	var out []core.Entity
	for _, e := range w.Query().With(w.Players).With(w.Positions).Execute() {
		if pos, _ := w.Positions.Get(e); !b.Bounds.Contains(pos.Vec) {
			out = append(out, e)
		}
	}
	return out
}
