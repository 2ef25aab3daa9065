package parameter

// Integration pipeline defaults
// Velocities are expressed in world units per tick
const (
	// GravityPerSecond is the downward acceleration in units per tick per second
	// Scaled by TickRate to obtain the per-tick velocity delta
	GravityPerSecond = 6.0

	// TerminalVelocity caps velocity magnitude after each tick
	TerminalVelocity = 5.0

	// StepScale is the position integration factor per tick (position += velocity * StepScale)
	StepScale = 1.0
)

// Lander thrust impulses emitted by the host keymap
const (
	ThrustUp    = 0.35
	ThrustSide  = 0.2
	ThrustBrake = 0.5
)

// GravityPerTick returns the tick-rate-scaled gravity magnitude
func GravityPerTick(perSecond float64, tickRate int) float64 {
	if tickRate <= 0 {
		return 0
	}
	return perSecond / float64(tickRate)
}
