package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/vmath"
)

// Config holds the integration constants for one pipeline
type Config struct {
	// Gravity is the per-tick velocity delta for gravity-affected entities
	Gravity mgl64.Vec2
	// TerminalVelocity caps velocity magnitude after integration
	TerminalVelocity float64
	// Dt is the position integration factor for one tick
	Dt float64
}

// DefaultConfig derives the pipeline constants from parameter defaults
func DefaultConfig() Config {
	return NewConfig(parameter.GravityPerSecond, parameter.TickRate, parameter.TerminalVelocity, parameter.StepScale)
}

// NewConfig scales gravity by tick rate and points it down
func NewConfig(gravityPerSecond float64, tickRate int, terminal, dt float64) Config {
	return Config{
		Gravity:          vmath.Down.Mul(parameter.GravityPerTick(gravityPerSecond, tickRate)),
		TerminalVelocity: terminal,
		Dt:               dt,
	}
}
