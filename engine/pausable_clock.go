package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops advancing while paused
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	realStart time.Time

	paused          bool
	pauseStart      time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:    source,
		realStart: source.Now(),
	}
}

// Now returns current game time (frozen while paused)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.realStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPausedTime)
	}
	return pc.realStart.Add(pc.source.Now().Sub(pc.realStart) - pc.totalPausedTime)
}

// Pause stops game time advancement; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement; no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
