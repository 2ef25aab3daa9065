package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PositionComponent is the world-space location of a physics entity
// Mutated only by velocity integration after spawn
type PositionComponent struct {
	Vec mgl64.Vec2
}

// VelocityComponent is the entity velocity in world units per tick
// Mutated by impulse summation, gravity and clamping, in that order
type VelocityComponent struct {
	Vec mgl64.Vec2
}
