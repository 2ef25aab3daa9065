package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIntegrate(t *testing.T) {
	got := Integrate(mgl64.Vec2{1, 1}, mgl64.Vec2{2, -3}, 0.5)
	if got != (mgl64.Vec2{2, -0.5}) {
		t.Errorf("Integrate = %v", got)
	}
}

func TestImpulseHelpers(t *testing.T) {
	if got := ApplyImpulse(mgl64.Vec2{1, 1}, mgl64.Vec2{0.5, -1}); got != (mgl64.Vec2{1.5, 0}) {
		t.Errorf("ApplyImpulse = %v", got)
	}
	if got := SetImpulse(mgl64.Vec2{9, 9}, mgl64.Vec2{1, 2}); got != (mgl64.Vec2{1, 2}) {
		t.Errorf("SetImpulse = %v", got)
	}
}

func TestCapSpeedPreservesDirection(t *testing.T) {
	vel := mgl64.Vec2{-30, 40}
	dir := vel.Normalize()

	if !CapSpeed(&vel, 5) {
		t.Fatal("CapSpeed did not clamp")
	}
	if math.Abs(vel.Len()-5) > 1e-12 {
		t.Errorf("magnitude = %v, want 5", vel.Len())
	}
	if !vel.Normalize().ApproxEqualThreshold(dir, 1e-12) {
		t.Errorf("direction changed: %v vs %v", vel.Normalize(), dir)
	}

	slow := mgl64.Vec2{1, 1}
	if CapSpeed(&slow, 5) || slow != (mgl64.Vec2{1, 1}) {
		t.Errorf("slow vector modified: %v", slow)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Gravity[0] != 0 || cfg.Gravity[1] >= 0 {
		t.Errorf("gravity not downward: %v", cfg.Gravity)
	}
	if math.Abs(cfg.Gravity[1]+0.1) > 1e-12 {
		t.Errorf("gravity = %v, want -0.1 per tick", cfg.Gravity[1])
	}
	if cfg.TerminalVelocity != 5.0 {
		t.Errorf("TerminalVelocity = %v", cfg.TerminalVelocity)
	}
}
