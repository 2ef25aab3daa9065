package parameter

import "time"

// Audio cues
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond

	CueThrustFreq     = 110.0
	CueThrustDuration = 40 * time.Millisecond

	CueCrashFreq     = 80.0
	CueCrashDuration = 600 * time.Millisecond

	CueStartFreq     = 660.0
	CueStartDuration = 120 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent (base 2)
	CueVolume = -1.5
)
