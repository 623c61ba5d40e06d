package ski

import (
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Mode selects the run's goal.
type Mode int

const (
	ModePresent Mode = iota // reach the present at the end of the course
	ModeEndless             // ski as far as possible
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "present"
}

// ParseMode converts a CLI name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "present":
		return ModePresent, true
	case "endless":
		return ModeEndless, true
	default:
		return ModePresent, false
	}
}

// Options configures a new World.
type Options struct {
	Mode         Mode
	ViewW, ViewH float64 // virtual pixels
	TickRate     int
	Seed         int64
	Images       ImageSource // nil means no sprites are ever loaded
}

// World is the complete mutable state of one run. It is advanced only by
// Update and read by the renderer through Snapshot.
type World struct {
	cfg        config.SkiConfig
	mode       Mode
	images     ImageSource
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	anim       AnimationTimings
	boostT     BoostTimings

	metrics Metrics
	slope   Slope

	tick         int
	paused       bool
	scrollOffset float64 // virtual pixels
	travelled    float64 // unscaled pixels
	distance     float64 // meters

	player    Player
	obstacles []Obstacle
	spawner   *Spawner
	present   Present
	boost     Boost
	scenery   Scenery
	skier     *assets.Image
	hat       *assets.Image

	phase       Phase
	phaseAt     int
	milestone   int // milestones reached this run
	milestoneAt int
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.SkiConfig, opts Options) *World {
	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	rng := rand.New(rand.NewSource(opts.Seed))

	w := &World{
		cfg:        cfg,
		mode:       opts.Mode,
		images:     opts.Images,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		anim: AnimationTimings{
			ShakeTicks:     rt.MsToTicks(cfg.Animation.ShakeMs),
			FadeTicks:      rt.MsToTicks(cfg.Animation.FadeMs),
			StaggerTicks:   rt.MsToTicks(cfg.Animation.LineStaggerMs),
			MilestoneTicks: rt.MsToTicks(cfg.Animation.MilestoneMs),
		},
		boostT: BoostTimings{
			Multiplier:       cfg.Boost.Multiplier,
			DurationTicks:    rt.MsToTicks(cfg.Boost.DurationMs),
			CooldownTicks:    rt.MsToTicks(cfg.Boost.CooldownMs),
			DoubleTapTicks:   rt.MsToTicks(cfg.Boost.DoubleTapMs),
			RepeatTicks:      rt.MsToTicks(cfg.Boost.RepeatMs),
			ParticleCount:    cfg.Boost.ParticleCount,
			ParticleLifetime: rt.MsToTicks(cfg.Boost.ParticleLifetimeMs),
		},
		scenery: NewScenery(rng),
	}
	w.spawner = NewSpawner(&w.cfg.Obstacles, opts.Images, rng)
	w.skier = w.image("skier")
	w.hat = w.image("hat")
	w.metrics = NewMetrics(opts.ViewW, opts.ViewH, &w.cfg)
	w.slope = w.metrics.Slope(w.cfg.Slope.Grade)
	w.Restart()
	return w
}

// Restart reinitializes every piece of run state. The random source keeps
// going, so consecutive runs differ but remain reproducible for a seed.
func (w *World) Restart() {
	w.tick = 0
	w.paused = false
	w.scrollOffset = 0
	w.travelled = 0
	w.distance = 0

	w.player = newPlayer(w.metrics, w.slope, w.cfg.Player.HitboxInset)
	w.obstacles = w.obstacles[:0]
	w.spawner.Reset(0)
	w.present = Present{Image: w.image("present")}
	w.boost = newBoost(w.boostT)

	w.phase = PhasePlaying
	w.phaseAt = 0
	w.milestone = 0
	w.milestoneAt = neverTick
}

func (w *World) image(name string) *assets.Image {
	if w.images == nil {
		return nil
	}
	return w.images.Image(name)
}

// Resize recomputes the metrics for a new viewport and rescales positional
// state so the run continues where it was.
func (w *World) Resize(viewW, viewH float64) {
	oldSlope := w.slope
	oldScale := w.metrics.Scale

	w.metrics = NewMetrics(viewW, viewH, &w.cfg)
	w.slope = w.metrics.Slope(w.cfg.Slope.Grade)
	ratio := w.metrics.Scale / oldScale

	w.scrollOffset *= ratio

	lift := oldSlope.GroundHeightAt(w.player.X) - w.player.Y
	w.player.X = w.metrics.PlayerX
	w.player.Width = w.metrics.PlayerW
	w.player.Height = w.metrics.PlayerH
	w.player.Y = w.slope.GroundHeightAt(w.player.X) - lift*ratio
	w.player.VelocityY *= ratio

	for i := range w.obstacles {
		w.obstacles[i].X *= ratio
		w.obstacles[i].Size *= ratio
	}
	if w.present.Visible {
		w.present.X *= ratio
		w.present.Size = w.metrics.PresentSize
	}
	for i := range w.boost.Particles {
		p := &w.boost.Particles[i]
		p.X *= ratio
		p.Y *= ratio
		p.VX *= ratio
		p.VY *= ratio
	}
}

// Mode returns the run's mode.
func (w *World) Mode() Mode { return w.mode }

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Distance returns the meters skied this run.
func (w *World) Distance() float64 { return w.distance }

// Paused reports whether the update step is frozen.
func (w *World) Paused() bool { return w.paused }

// Tick returns the number of simulated ticks this run.
func (w *World) Tick() int { return w.tick }

// Metrics returns the current viewport metrics.
func (w *World) Metrics() Metrics { return w.metrics }

// Config returns the configuration the world was built with.
func (w *World) Config() config.SkiConfig { return w.cfg }

// speedFactor is the difficulty multiplier on the scroll speed. Difficulty
// only ramps up in endless mode.
func (w *World) speedFactor() float64 {
	if w.mode != ModeEndless {
		return 1
	}
	return w.difficulty.SpeedFactor(w.distance, w.tick)
}

func (w *World) maxSpacing() float64 {
	o := w.cfg.Obstacles
	if w.mode != ModeEndless {
		return o.MaxSpacing
	}
	return w.difficulty.MaxSpacing(o.MinSpacing, o.MaxSpacing, w.distance, w.tick)
}

func (w *World) enter(p Phase) {
	w.phase = p
	w.phaseAt = w.tick
}
