// Package audio plays short synthesized cues for host events
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/random"
)

// CuePlayer mixes cues onto the speaker
// Every method is safe before Initialize and after Close; cues are then dropped
type CuePlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	noise       *random.Locking

	muted    atomic.Bool
	thrustOn atomic.Bool
	played   atomic.Int64
}

// NewCuePlayer creates an uninitialized player at the given volume exponent
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: volume,
		noise:  random.NewLocking(),
	}
}

// Initialize opens the speaker; a second call is a no-op
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferSize)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback; the speaker stays open for the process lifetime
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *CuePlayer) SetMuted(m bool) { p.muted.Store(m) }
func (p *CuePlayer) Muted() bool     { return p.muted.Load() }

// Played counts cues handed to the mixer
func (p *CuePlayer) Played() int64 { return p.played.Load() }

// Play queues a cue; thrust does not retrigger while a thrust cue is sounding
func (p *CuePlayer) Play(c Cue) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}

	s := p.build(c)
	if s == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// build returns nil when the cue should be skipped
func (p *CuePlayer) build(c Cue) beep.Streamer {
	s := c.streamer(p.rate, p.noise)
	if s == nil {
		return nil
	}
	if c == CueThrust {
		if !p.thrustOn.CompareAndSwap(false, true) {
			return nil
		}
		s = beep.Seq(s, beep.Callback(func() { p.thrustOn.Store(false) }))
	}
	return withVolume(s, p.volume, false)
}
