package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-ski/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorDuration(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(440, 100*time.Millisecond, wave, testRate))
		if len(samples) != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, expected %d", wave, len(samples), testRate.N(100*time.Millisecond))
		}
		for _, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %v out of range or not mono", wave, s)
			}
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate))

	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain level = %v, expected 1", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("release should end near silence, got %v", last)
	}
}

func TestNewVolumeSilent(t *testing.T) {
	samples := drain(t, newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatalf("silent volume produced %v", s[0])
		}
	}

	half := drain(t, newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0.5))
	if math.Abs(half[0][0]-0.5) > 1e-9 {
		t.Errorf("half volume = %v, expected 0.5", half[0][0])
	}
}

func TestCueForEvents(t *testing.T) {
	for _, ev := range []core.Event{core.EventJump, core.EventBoost, core.EventCrash, core.EventWin, core.EventMilestone} {
		s := Cue(ev, testRate)
		if s == nil {
			t.Errorf("event %d has no cue", ev)
			continue
		}
		if len(drain(t, s)) == 0 {
			t.Errorf("event %d cue is empty", ev)
		}
	}
	if Cue(core.EventNone, testRate) != nil {
		t.Error("EventNone should be silent")
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)

	if err := p.Initialize(); err != nil {
		t.Fatalf("disabled player should not fail: %v", err)
	}
	// None of these may touch the speaker.
	p.Play(core.EventJump, core.EventCrash)
	p.SetPaused(true)
	p.Close()
}
