package audio

import (
	"sync"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/random"
)

// drain counts samples a streamer yields and checks their range
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1.0001 || v > 1.0001 {
				t.Fatalf("sample %d out of range: %v", total+i, v)
			}
		}
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	for _, c := range []Cue{CueThrust, CueCrash, CueStart} {
		t.Run(c.String(), func(t *testing.T) {
			got := drain(t, c.streamer(rate, random.SeededLocking(1)))
			want := rate.N(c.Duration())
			// Sequenced cues round per segment
			if got < want-2 || got > want+2 {
				t.Errorf("samples = %d, want ~%d", got, want)
			}
		})
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	buf := make([][2]float64, 4)
	CueThrust.streamer(rate, random.SeededLocking(1)).Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
}

func TestCrashCuesShareNoise(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	noise := random.SeededLocking(7)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		s := CueCrash.streamer(rate, noise)
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([][2]float64, 256)
			for {
				n, ok := s.Stream(buf)
				for _, smp := range buf[:n] {
					if smp[0] < -1 || smp[0] > 1 || smp[0] != smp[1] {
						t.Errorf("sample %v out of range or not mono", smp)
						return
					}
				}
				if !ok {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewCuePlayer(parameter.CueVolume)
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panicked without initialization: %v", r)
		}
	}()

	for _, c := range []Cue{CueThrust, CueCrash, CueStart} {
		if p.Play(c) {
			t.Errorf("Play(%s) succeeded without Initialize", c)
		}
	}
	p.Close()
	if p.Played() != 0 {
		t.Errorf("Played = %d, want 0", p.Played())
	}
}

func TestThrustDoesNotRetrigger(t *testing.T) {
	p := NewCuePlayer(0)
	if p.build(CueThrust) == nil {
		t.Fatal("first thrust skipped")
	}
	if p.build(CueThrust) != nil {
		t.Error("thrust retriggered while sounding")
	}
	if p.build(CueCrash) == nil {
		t.Error("crash blocked by thrust")
	}
}

func TestThrustReleasesAfterDrain(t *testing.T) {
	p := NewCuePlayer(0)
	drain(t, p.build(CueThrust))
	if p.build(CueThrust) == nil {
		t.Error("thrust still locked after the cue finished")
	}
}

func TestMutedDropsCues(t *testing.T) {
	p := NewCuePlayer(0)
	p.SetMuted(true)
	if !p.Muted() {
		t.Fatal("Muted = false")
	}
	if p.Play(CueStart) {
		t.Error("Play succeeded while muted")
	}
}

func TestPlayerInitialize(t *testing.T) {
	p := NewCuePlayer(parameter.CueVolume)
	if err := p.Initialize(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer p.Close()

	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize: %v", err)
	}
	if !p.Play(CueStart) {
		t.Error("Play(CueStart) after Initialize returned false")
	}
}
