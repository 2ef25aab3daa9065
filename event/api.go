package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/core"
)

// EmitImpulse queues an additive impulse
// Returns false when the queue is full and the impulse was dropped
func EmitImpulse(q *EventQueue, target core.Entity, amount mgl64.Vec2, source ImpulseSource) bool {
	return q.Push(GameEvent{
		Type:    EventImpulse,
		Payload: ImpulsePayload{Target: target, Amount: amount, Source: source},
	})
}

// EmitVelocity queues an absolute impulse that replaces the target velocity
func EmitVelocity(q *EventQueue, target core.Entity, velocity mgl64.Vec2, source ImpulseSource) bool {
	return q.Push(GameEvent{
		Type:    EventImpulse,
		Payload: ImpulsePayload{Target: target, Amount: velocity, Absolute: true, Source: source},
	})
}

// EmitTicks queues up to n physics tick markers and returns how many were accepted
// Stops at the first rejection; later markers would be rejected too
func EmitTicks(q *EventQueue, n int) int {
	for i := 0; i < n; i++ {
		if !q.Push(GameEvent{Type: EventPhysicsTick}) {
			return i
		}
	}
	return n
}

// Emit queues a payload-less control event
func Emit(q *EventQueue, t EventType) bool {
	return q.Push(GameEvent{Type: t})
}
