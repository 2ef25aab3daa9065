package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/random"
)

// Cue names a sound the host triggers
type Cue int

const (
	CueThrust Cue = iota
	CueCrash
	CueStart
)

func (c Cue) String() string {
	switch c {
	case CueThrust:
		return "thrust"
	case CueCrash:
		return "crash"
	case CueStart:
		return "start"
	}
	return "unknown"
}

// Duration is the cue length
func (c Cue) Duration() time.Duration {
	switch c {
	case CueThrust:
		return parameter.CueThrustDuration
	case CueCrash:
		return parameter.CueCrashDuration
	case CueStart:
		return 2 * parameter.CueStartDuration
	}
	return 0
}

// streamer builds a fresh one-shot streamer for the cue; noise feeds the crash cue
func (c Cue) streamer(rate beep.SampleRate, noise *random.Locking) beep.Streamer {
	switch c {
	case CueThrust:
		d := parameter.CueThrustDuration
		return newEnvelope(newOscillator(parameter.CueThrustFreq, d, WaveSquare, rate, noise), d, 5*time.Millisecond, 15*time.Millisecond, rate)
	case CueCrash:
		d := parameter.CueCrashDuration
		return newEnvelope(newOscillator(parameter.CueCrashFreq, d, WaveNoise, rate, noise), d, 2*time.Millisecond, d/2, rate)
	case CueStart:
		return beep.Seq(tone(rate, parameter.CueStartFreq), tone(rate, parameter.CueStartFreq*1.5))
	}
	return nil
}

// tone is one enveloped sine note of the start jingle
func tone(rate beep.SampleRate, freq float64) beep.Streamer {
	d := parameter.CueStartDuration
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist; play silence for the slot
		return beep.Silence(rate.N(d))
	}
	return newEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, 30*time.Millisecond, rate)
}
