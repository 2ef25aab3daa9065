package engine

import (
	"log"
	"time"
)

// FixedStep converts elapsed clock time into a whole number of fixed ticks
// The remainder carries over, so tick cadence is independent of how often Advance is called
type FixedStep struct {
	interval   time.Duration
	maxCatchUp int

	last    time.Time
	acc     time.Duration
	started bool

	dropped uint64
}

// NewFixedStep creates an accumulator emitting one tick per interval
// maxCatchUp bounds ticks returned by a single Advance; excess is dropped
func NewFixedStep(interval time.Duration, maxCatchUp int) *FixedStep {
	if interval <= 0 {
		panic("fixed step interval must be positive")
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &FixedStep{
		interval:   interval,
		maxCatchUp: maxCatchUp,
	}
}

// Reset discards accumulated time and restarts measurement at now
func (f *FixedStep) Reset(now time.Time) {
	f.last = now
	f.acc = 0
	f.started = true
}

// Advance returns the number of ticks elapsed since the previous call
// The first call only records the reference time
func (f *FixedStep) Advance(now time.Time) int {
	if !f.started {
		f.Reset(now)
		return 0
	}

	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed <= 0 {
		return 0
	}

	f.acc += elapsed
	n := int(f.acc / f.interval)
	f.acc -= time.Duration(n) * f.interval

	if n > f.maxCatchUp {
		skipped := n - f.maxCatchUp
		f.dropped += uint64(skipped)
		log.Printf("fixed step: behind by %d ticks, dropping %d", n, skipped)
		n = f.maxCatchUp
	}

	return n
}

// Dropped returns the total ticks discarded by the catch-up cap
func (f *FixedStep) Dropped() uint64 {
	return f.dropped
}
