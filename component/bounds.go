package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/vmath"
)

// BoundingBoxComponent is an axis-aligned extent centered on the entity position
// Immutable after creation; never touched by integration
type BoundingBoxComponent struct {
	Width, Height float64
}

// Size returns the extent as a vector
func (b BoundingBoxComponent) Size() mgl64.Vec2 {
	return mgl64.Vec2{b.Width, b.Height}
}

// At returns the world rectangle for a box centered at pos
func (b BoundingBoxComponent) At(pos mgl64.Vec2) vmath.Rect {
	return vmath.RectFromCenter(pos, b.Size())
}
