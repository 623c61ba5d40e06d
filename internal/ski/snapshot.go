package ski

import (
	"slices"

	"github.com/vovakirdan/tui-ski/internal/assets"
)

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Mode    Mode
	Tick    int
	Phase   Phase
	Staging Staging
	Paused  bool

	Metrics Metrics
	Slope   Slope

	ScrollOffset  float64
	Distance      float64
	TotalDistance float64

	Player    Player
	Skier     *assets.Image
	Hat       *assets.Image
	Obstacles []Obstacle
	Present   Present
	Particles []Particle

	Boosting    bool
	BoostReady  bool
	BoostCharge float64

	Mountains []PlacedMountain
	Trees     []PlacedTree

	Milestone        int // meters of the last milestone reached
	MilestoneVisible bool
}

// Snapshot captures the world for rendering. Slices are cloned so the
// caller may hold on to the result.
func (w *World) Snapshot() Snapshot {
	elapsed := 0
	if w.phase.Terminal() {
		elapsed = w.tick - w.phaseAt
	}

	return Snapshot{
		Mode:    w.mode,
		Tick:    w.tick,
		Phase:   w.phase,
		Staging: StagingFor(w.phase, elapsed, w.anim),
		Paused:  w.paused,

		Metrics: w.metrics,
		Slope:   w.slope,

		ScrollOffset:  w.scrollOffset,
		Distance:      w.distance,
		TotalDistance: w.cfg.Progress.TotalDistance,

		Player:    w.player,
		Skier:     w.skier,
		Hat:       w.hat,
		Obstacles: slices.Clone(w.obstacles),
		Present:   w.present,
		Particles: slices.Clone(w.boost.Particles),

		Boosting:    w.boost.IsBoosting,
		BoostReady:  w.boost.Ready(w.tick),
		BoostCharge: w.boost.Charge(w.tick),

		Mountains: w.scenery.PlaceMountains(w.scrollOffset, w.metrics),
		Trees:     w.scenery.PlaceTrees(w.scrollOffset, w.metrics, w.slope),

		Milestone:        w.milestone * int(w.cfg.Progress.MilestoneEvery),
		MilestoneVisible: w.milestone > 0 && w.tick-w.milestoneAt < w.anim.MilestoneTicks,
	}
}
