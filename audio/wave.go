package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mars-base-one/random"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveNoise
)

// oscillator emits a fixed-length mono wave on both channels
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     WaveType
	rate     beep.SampleRate
	noise    *random.Locking
}

// noise is read only by WaveNoise and may be shared between oscillators on different goroutines
func newOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate, noise *random.Locking) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate, noise: noise}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = o.noise.RangeFloat(-1, 1)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			gain = max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume applies a base-2 exponent gain
func withVolume(s beep.Streamer, exponent float64, silent bool) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: exponent, Silent: silent}
}
