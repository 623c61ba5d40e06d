// Package audio plays short synthesized cues for gameplay events.
//
// Sound is optional: when no output device is available Initialize fails,
// the player stays silent and the game runs unchanged.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// Config controls the audio output.
type Config struct {
	Enabled    bool
	Volume     float64 // master volume, 0 to 1
	SampleRate int
}

// DefaultConfig returns the default audio configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: 44100,
	}
}

// Cue returns the streamer for an event, or nil when the event is silent.
func Cue(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case core.EventJump:
		return JumpSound(rate)
	case core.EventBoost:
		return BoostSound(rate)
	case core.EventCrash:
		return CrashSound(rate)
	case core.EventWin:
		return WinSound(rate)
	case core.EventMilestone:
		return MilestoneSound(rate)
	default:
		return nil
	}
}

// Player mixes event cues into the speaker.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *beep.Ctrl
	initialized bool
}

// NewPlayer creates a silent player. Call Initialize to open the device.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	mixer := &beep.Mixer{}
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		master: &beep.Ctrl{Streamer: newVolume(mixer, cfg.Volume)},
	}
}

// Initialize opens the speaker. A disabled player is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Play queues the cues for events. Safe to call on an uninitialized player.
func (p *Player) Play(events ...core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, ev := range events {
		if s := Cue(ev, p.rate); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// SetPaused mutes or resumes all output.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.master.Paused = paused
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
