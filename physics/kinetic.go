package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/vmath"
)

// Integrate advances position by velocity over dt: p = p + v*dt
func Integrate(pos, vel mgl64.Vec2, dt float64) mgl64.Vec2 {
	return pos.Add(vel.Mul(dt))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(vel, delta mgl64.Vec2) mgl64.Vec2 {
	return vel.Add(delta)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(_, vel mgl64.Vec2) mgl64.Vec2 {
	return vel
}

// CapSpeed limits the velocity magnitude to maxSpeed, preserving direction
// Returns true if velocity was clamped
func CapSpeed(vel *mgl64.Vec2, maxSpeed float64) bool {
	capped, clamped := vmath.ClampMagnitude(*vel, maxSpeed)
	if clamped {
		*vel = capped
	}
	return clamped
}
