package ski

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(99))
}

// newTestWorld builds an 800x400 world at 60 ticks per second.
func newTestWorld(mode Mode, mutate func(*config.SkiConfig)) *World {
	cfg := config.DefaultSkiConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWorld(cfg, Options{
		Mode:     mode,
		ViewW:    BaseWidth,
		ViewH:    BaseHeight,
		TickRate: 60,
		Seed:     7,
	})
}

func noObstacles(cfg *config.SkiConfig) {
	cfg.Obstacles.Catalog = nil
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// crash drops an obstacle onto the grounded player and steps once.
func crash(t *testing.T, w *World) {
	t.Helper()
	w.obstacles = append(w.obstacles, Obstacle{Kind: "rock", X: w.player.X + 40, Size: 60})
	events := Update(w, idle())
	if w.phase != PhaseGameOver {
		t.Fatalf("expected crash, phase is %v", w.phase)
	}
	if !slices.Contains(events, core.EventCrash) {
		t.Fatalf("expected crash event, got %v", events)
	}
}

func TestJumpAppliesOnSameTick(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)

	events := Update(w, press(core.ActionJump))
	if !slices.Contains(events, core.EventJump) {
		t.Fatalf("expected jump event, got %v", events)
	}
	if !w.player.IsJumping {
		t.Fatal("player should be jumping")
	}
	if got, want := w.player.VelocityY, w.metrics.JumpPower+w.metrics.Gravity; got != want {
		t.Errorf("velocity after jump tick = %v, expected %v", got, want)
	}

	// A second press mid-air is ignored.
	events = Update(w, press(core.ActionJump))
	if slices.Contains(events, core.EventJump) {
		t.Error("mid-air jump should be ignored")
	}
	if got, want := w.player.VelocityY, w.metrics.JumpPower+2*w.metrics.Gravity; got != want {
		t.Errorf("velocity = %v, expected %v", got, want)
	}
}

func TestPlayerPinnedToGroundWhileRiding(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	for range 100 {
		Update(w, idle())
		if w.player.Y != w.slope.GroundHeightAt(w.player.X) {
			t.Fatalf("player at %v, ground at %v", w.player.Y, w.slope.GroundHeightAt(w.player.X))
		}
	}
}

func TestSpawnerThresholdsAndPlacement(t *testing.T) {
	full := config.DefaultSkiConfig()
	obs := full.Obstacles
	obs.MinSpacing, obs.MaxSpacing = 600, 1200
	m := NewMetrics(BaseWidth, BaseHeight, &full)

	s := NewSpawner(&obs, nil, newTestRand())
	s.Reset(0)
	if n := s.NextSpawnAt(); n < 600 || n > 1200 {
		t.Fatalf("first threshold %v outside [600, 1200]", n)
	}

	for d := 0.0; d <= 1200; d += 0.5 {
		o, ok := s.Next(d, obs.MaxSpacing, m)
		if !ok {
			continue
		}
		if n := s.NextSpawnAt(); n < d+600 || n > d+1200 {
			t.Errorf("threshold %v after spawn at %v outside spacing", n, d)
		}
		if o.X != m.ViewW+o.Size {
			t.Errorf("spawned at %v, expected just past the right edge (%v)", o.X, m.ViewW+o.Size)
		}
		if o.Size <= 0 {
			t.Errorf("spawned obstacle has size %v", o.Size)
		}
	}
	if s.Spawned() < 1 {
		t.Error("expected at least one spawn within 1200 units")
	}
}

func TestSpawnerEmptyCatalog(t *testing.T) {
	full := config.DefaultSkiConfig()
	obs := full.Obstacles
	obs.Catalog = nil
	m := NewMetrics(BaseWidth, BaseHeight, &full)

	s := NewSpawner(&obs, nil, newTestRand())
	s.Reset(0)
	for d := 0.0; d < 5000; d += 10 {
		if _, ok := s.Next(d, obs.MaxSpacing, m); ok {
			t.Fatal("empty catalog should never spawn")
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	full := config.DefaultSkiConfig()
	m := NewMetrics(BaseWidth, BaseHeight, &full)

	run := func() []string {
		s := NewSpawner(&full.Obstacles, nil, rand.New(rand.NewSource(5)))
		s.Reset(0)
		var kinds []string
		for d := 0.0; d < 3000; d += 0.5 {
			if o, ok := s.Next(d, full.Obstacles.MaxSpacing, m); ok {
				kinds = append(kinds, o.Kind)
			}
		}
		return kinds
	}
	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different spawns:\n%v\n%v", a, b)
	}
}

func TestWorldSpawnsAfterTravel(t *testing.T) {
	w := newTestWorld(ModePresent, func(cfg *config.SkiConfig) {
		cfg.Obstacles.MinSpacing = 600
		cfg.Obstacles.MaxSpacing = 1200
		cfg.Progress.MetersPerUnit = 10 // 50m per tick
	})

	for w.distance < 1200 {
		Update(w, idle())
		if w.phase != PhasePlaying {
			t.Fatalf("run ended at %vm", w.distance)
		}
	}
	if w.spawner.Spawned() < 1 {
		t.Error("expected at least one obstacle after 1200m")
	}
}

func TestObstaclesScrollAndCull(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	w.obstacles = []Obstacle{
		{Kind: "rock", X: 700, Size: 40},
		{Kind: "rock", X: -38, Size: 40},
	}

	Update(w, idle())
	if len(w.obstacles) != 1 {
		t.Fatalf("expected the off-screen obstacle to be culled, have %d", len(w.obstacles))
	}
	if w.obstacles[0].X != 695 {
		t.Errorf("obstacle at %v, expected 695", w.obstacles[0].X)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	crash(t, w)

	st := w.Snapshot()
	if st.Phase != PhaseGameOver {
		t.Errorf("snapshot phase = %v", st.Phase)
	}
}

func TestClearanceLetsPlayerStandOnObstacle(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	// Obstacle ends up at x=185 after this tick: ground 277, top 217,
	// clearance line at 235.
	w.obstacles = []Obstacle{{Kind: "rock", X: 190, Size: 60}}
	w.player.IsJumping = true
	w.player.VelocityY = 1
	w.player.Y = 220

	Update(w, idle())
	if w.phase != PhasePlaying {
		t.Fatalf("descending into the clearance band should not crash, phase %v", w.phase)
	}
	if !w.player.IsOnObstacle {
		t.Fatal("player should be standing on the obstacle")
	}

	events := Update(w, press(core.ActionJump))
	if !slices.Contains(events, core.EventJump) {
		t.Error("player on an obstacle should be able to jump again")
	}
}

func TestTerminalPhaseFreezesWorld(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	for range 20 {
		Update(w, idle())
	}
	crash(t, w)

	distance, scroll := w.distance, w.scrollOffset
	obstacles := slices.Clone(w.obstacles)
	for range 120 {
		Update(w, press(core.ActionBoost, core.ActionPause))
		if w.phase != PhaseGameOver {
			t.Fatalf("left game over without restart: %v", w.phase)
		}
	}
	if w.distance != distance || w.scrollOffset != scroll {
		t.Errorf("world moved after crash: distance %v->%v scroll %v->%v", distance, w.distance, scroll, w.scrollOffset)
	}
	if !slices.Equal(w.obstacles, obstacles) {
		t.Error("obstacles changed after crash")
	}
	if w.paused {
		t.Error("pause should be ignored after crash")
	}
}

func TestRestartResetsRun(t *testing.T) {
	w := newTestWorld(ModePresent, nil)
	doubleTap(w)
	for range 30 {
		Update(w, idle())
	}
	if len(w.boost.Particles) == 0 {
		t.Fatal("boost should have left particles")
	}
	crash(t, w)

	Update(w, press(core.ActionRestart))

	if w.phase != PhasePlaying {
		t.Fatalf("phase after restart = %v", w.phase)
	}
	if w.tick != 0 || w.distance != 0 || w.scrollOffset != 0 || w.travelled != 0 {
		t.Errorf("counters not reset: tick=%d distance=%v scroll=%v", w.tick, w.distance, w.scrollOffset)
	}
	if len(w.obstacles) != 0 || len(w.boost.Particles) != 0 {
		t.Errorf("leftovers after restart: %d obstacles, %d particles", len(w.obstacles), len(w.boost.Particles))
	}
	if w.boost.IsBoosting || w.boost.held || w.boost.LastBoostAt != neverTick || w.boost.LastTapAt != neverTick {
		t.Errorf("boost timers not reset: %+v", w.boost)
	}
	if w.present.Visible {
		t.Error("present should be hidden after restart")
	}
	if w.player.IsJumping || w.player.Y != w.slope.GroundHeightAt(w.player.X) {
		t.Error("player should be back on the ground")
	}
	o := w.cfg.Obstacles
	if n := w.spawner.NextSpawnAt(); n < o.MinSpacing || n > o.MaxSpacing {
		t.Errorf("spawn threshold %v outside [%v, %v]", n, o.MinSpacing, o.MaxSpacing)
	}
}

func TestJumpRestartsOnlyAfterShake(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	crash(t, w)

	Update(w, press(core.ActionJump))
	if w.phase != PhaseGameOver {
		t.Fatal("jump during the crash shake should not restart")
	}
	for w.tick-w.phaseAt < w.anim.ShakeTicks {
		Update(w, idle())
	}
	Update(w, press(core.ActionJump))
	if w.phase != PhasePlaying {
		t.Error("jump after the shake should restart")
	}
}

func TestPresentModeReachesGoalOnce(t *testing.T) {
	w := newTestWorld(ModePresent, func(cfg *config.SkiConfig) {
		noObstacles(cfg)
		cfg.Progress.MetersPerUnit = 10
	})
	total := w.cfg.Progress.TotalDistance
	threshold := w.cfg.Progress.PresentAt * total

	wins := 0
	for range 600 {
		for _, ev := range Update(w, press(core.ActionRestart)) {
			if ev == core.EventWin {
				wins++
			}
		}
		if w.distance > total {
			t.Fatalf("distance %v exceeds total %v", w.distance, total)
		}
		if w.present.Visible && w.distance < threshold && w.phase == PhasePlaying {
			t.Fatalf("present visible at %vm, before %vm", w.distance, threshold)
		}
	}
	if wins != 1 {
		t.Errorf("won %d times, expected exactly once", wins)
	}
	if w.phase != PhaseWon {
		t.Errorf("phase = %v, expected won (restart is not honoured after a win)", w.phase)
	}
}

func TestMissedPresentComesAround(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	w.distance = w.cfg.Progress.TotalDistance
	w.present.place(w.metrics)
	w.present.X = -w.present.Size + 1

	w.updatePresent(5)
	if !w.present.Visible || w.present.X != w.metrics.ViewW+w.present.Size {
		t.Errorf("missed present should be placed past the right edge, at %v", w.present.X)
	}
}

func TestEndlessModeHasNoGoal(t *testing.T) {
	w := newTestWorld(ModeEndless, func(cfg *config.SkiConfig) {
		noObstacles(cfg)
		cfg.Progress.MetersPerUnit = 10
	})

	milestones := 0
	for range 400 {
		for _, ev := range Update(w, idle()) {
			if ev == core.EventMilestone {
				milestones++
			}
		}
		if w.present.Visible {
			t.Fatal("endless mode should never show the present")
		}
	}
	if w.distance <= w.cfg.Progress.TotalDistance {
		t.Errorf("endless distance %v should pass the present-mode total", w.distance)
	}
	if want := int(w.distance / w.cfg.Progress.MilestoneEvery); milestones != want {
		t.Errorf("milestones = %d, expected %d", milestones, want)
	}
	if w.phase != PhasePlaying {
		t.Errorf("phase = %v", w.phase)
	}
}

func TestEndlessDifficultySpeedsUp(t *testing.T) {
	w := newTestWorld(ModeEndless, noObstacles)
	w.distance = w.cfg.Difficulty.Progression.MaxAt
	if f := w.speedFactor(); f <= 1 {
		t.Errorf("speed factor at max difficulty = %v, expected > 1", f)
	}

	p := newTestWorld(ModePresent, noObstacles)
	p.distance = p.cfg.Difficulty.Progression.MaxAt
	if f := p.speedFactor(); f != 1 {
		t.Errorf("present mode speed factor = %v, expected 1", f)
	}
}

func TestPauseFreezesUpdate(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	Update(w, idle())

	Update(w, press(core.ActionPause))
	tick, distance := w.tick, w.distance
	for range 10 {
		Update(w, idle())
	}
	if !w.paused || w.tick != tick || w.distance != distance {
		t.Errorf("paused world advanced: tick %d->%d distance %v->%v", tick, w.tick, distance, w.distance)
	}

	Update(w, press(core.ActionPause))
	if w.paused || w.tick != tick+1 {
		t.Errorf("unpause should resume on the same tick: paused=%v tick=%d", w.paused, w.tick)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	w.obstacles = []Obstacle{{Kind: "rock", X: 600, Size: 48}}

	s := w.Snapshot()
	s.Obstacles[0].X = 0
	s.Player.Y = 0
	if w.obstacles[0].X != 600 || w.player.Y == 0 {
		t.Error("mutating a snapshot changed the world")
	}
}

func TestResizeRescalesState(t *testing.T) {
	w := newTestWorld(ModePresent, noObstacles)
	w.obstacles = []Obstacle{{Kind: "rock", X: 500, Size: 48}}
	Update(w, press(core.ActionJump))
	for range 5 {
		Update(w, idle())
	}
	lift := w.slope.GroundHeightAt(w.player.X) - w.player.Y
	obsX := w.obstacles[0].X

	w.Resize(1600, 800)

	if w.metrics.Scale != 2 || w.metrics.Gravity != 1 {
		t.Fatalf("metrics not recomputed: %+v", w.metrics)
	}
	if got := w.slope.GroundHeightAt(w.player.X) - w.player.Y; math.Abs(got-2*lift) > 1e-9 {
		t.Errorf("lift = %v, expected %v", got, 2*lift)
	}
	if w.obstacles[0].X != 2*obsX || w.obstacles[0].Size != 96 {
		t.Errorf("obstacle = %+v, expected x=%v size=96", w.obstacles[0], 2*obsX)
	}
	if w.player.Width != w.metrics.PlayerW || w.player.X != w.metrics.PlayerX {
		t.Errorf("player geometry not rescaled: %+v", w.player)
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() (float64, int, Phase) {
		w := newTestWorld(ModeEndless, nil)
		for i := range 3000 {
			in := idle()
			if i%37 == 0 {
				in.Set(core.ActionJump)
			}
			if i%400 < 2 {
				in.Set(core.ActionBoost)
			}
			Update(w, in)
			if w.phase != PhasePlaying {
				break
			}
		}
		return w.distance, w.tick, w.phase
	}

	d1, t1, p1 := run()
	d2, t2, p2 := run()
	if d1 != d2 || t1 != t2 || p1 != p2 {
		t.Errorf("runs diverged: (%v, %d, %v) vs (%v, %d, %v)", d1, t1, p1, d2, t2, p2)
	}
}
