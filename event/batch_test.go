package event

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/core"
)

func impulse(x float64) GameEvent {
	return GameEvent{Type: EventImpulse, Payload: ImpulsePayload{Target: core.NewEntity(0, 1), Amount: mgl64.Vec2{x, 0}}}
}

func tick() GameEvent { return GameEvent{Type: EventPhysicsTick} }

func TestSplitTicksAssignsImpulsesToNextTick(t *testing.T) {
	events := []GameEvent{
		impulse(1), impulse(2), tick(),
		{Type: EventGameStart},
		tick(),
		impulse(3), tick(),
		impulse(4),
	}

	d := SplitTicks(events, []ImpulsePayload{{Amount: mgl64.Vec2{0, 0}}})

	if len(d.Ticks) != 3 {
		t.Fatalf("ticks = %d, want 3", len(d.Ticks))
	}
	if len(d.Ticks[0]) != 3 {
		t.Errorf("tick 0 has %d impulses, want 3 (carry + 2)", len(d.Ticks[0]))
	}
	if len(d.Ticks[1]) != 0 {
		t.Errorf("tick 1 has %d impulses, want 0", len(d.Ticks[1]))
	}
	if len(d.Ticks[2]) != 1 || d.Ticks[2][0].Amount[0] != 3 {
		t.Errorf("tick 2 = %+v", d.Ticks[2])
	}
	if len(d.Pending) != 1 || d.Pending[0].Amount[0] != 4 {
		t.Errorf("pending = %+v", d.Pending)
	}
	if len(d.Control) != 1 || d.Control[0].Type != EventGameStart {
		t.Errorf("control = %+v", d.Control)
	}
}

func TestSplitTicksNoTickCarriesEverything(t *testing.T) {
	d := SplitTicks([]GameEvent{impulse(1), impulse(2)}, nil)
	if len(d.Ticks) != 0 {
		t.Errorf("ticks = %d", len(d.Ticks))
	}
	if len(d.Pending) != 2 {
		t.Errorf("pending = %d, want 2", len(d.Pending))
	}
}

func TestSplitTicksDropsMalformedPayload(t *testing.T) {
	d := SplitTicks([]GameEvent{{Type: EventImpulse, Payload: "bogus"}, tick()}, nil)
	if len(d.Ticks) != 1 || len(d.Ticks[0]) != 0 {
		t.Errorf("malformed impulse not dropped: %+v", d.Ticks)
	}
}
