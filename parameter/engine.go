package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed logical simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the duration of one fixed simulation step
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the host rendering interval (~30 FPS, independent of TickRate)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxCatchUpTicks caps ticks flushed by a single clock advance after a stall
	// Ticks beyond the cap are dropped, not deferred
	MaxCatchUpTicks = 5
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
