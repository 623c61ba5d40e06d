package ski

import (
	"math"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// Update advances the world by one fixed tick and returns the events that
// occurred. Input is applied first, then the steps run in a fixed order.
// Once the run is over only the terminal animation clock and the particles
// keep moving.
func Update(w *World, in core.InputFrame) []core.Event {
	if w.phase.Terminal() {
		if w.wantsRestart(in) {
			w.Restart()
			return nil
		}
		w.tick++
		w.boost.AgeParticles()
		return nil
	}

	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		return nil
	}

	w.tick++
	var events []core.Event

	if in.Has(core.ActionJump) && w.player.Jump(w.metrics.JumpPower) {
		events = append(events, core.EventJump)
	}
	if in.Has(core.ActionBoost) && w.boost.Tap(w.tick) {
		w.boost.Emit(w.player.X, w.player.Y-w.player.Height*0.3, w.metrics.Scale, w.rng)
		events = append(events, core.EventBoost)
	}

	w.boost.Expire(w.tick)

	mult := w.boost.SpeedMultiplier() * w.speedFactor()
	step := w.metrics.ScrollSpeed * mult

	w.scrollOffset += step

	w.travelled += w.cfg.Physics.BaseScrollSpeed * mult
	w.distance = w.travelled * w.cfg.Progress.MetersPerUnit
	if w.mode == ModePresent {
		w.distance = math.Min(w.distance, w.cfg.Progress.TotalDistance)
	}
	if w.reachedMilestone() {
		events = append(events, core.EventMilestone)
	}

	w.boost.AgeParticles()

	if w.updatePresent(step) {
		w.enter(PhaseWon)
		return append(events, core.EventWin)
	}

	w.player.Integrate(w.metrics.Gravity, w.slope.GroundHeightAt(w.player.X))

	if w.updateObstacles(step) {
		w.enter(PhaseGameOver)
		events = append(events, core.EventCrash)
	}
	return events
}

// wantsRestart reports whether input restarts a crashed run. Jump doubles
// as restart once the crash shake has settled.
func (w *World) wantsRestart(in core.InputFrame) bool {
	if w.phase != PhaseGameOver {
		return false
	}
	if in.Has(core.ActionRestart) {
		return true
	}
	return in.Has(core.ActionJump) && w.tick-w.phaseAt >= w.anim.ShakeTicks
}

func (w *World) reachedMilestone() bool {
	every := w.cfg.Progress.MilestoneEvery
	if w.mode != ModeEndless || every <= 0 {
		return false
	}
	n := int(w.distance / every)
	if n <= w.milestone {
		return false
	}
	w.milestone = n
	w.milestoneAt = w.tick
	return true
}

// updatePresent moves the present and reports whether it was collected.
func (w *World) updatePresent(step float64) bool {
	if w.mode != ModePresent {
		return false
	}
	p := &w.present
	if !p.Visible {
		if w.distance >= w.cfg.Progress.PresentAt*w.cfg.Progress.TotalDistance {
			p.place(w.metrics)
		}
		return false
	}

	p.X -= step
	if p.X < -p.Size {
		// Missed it; bring it around again.
		p.place(w.metrics)
		return false
	}
	return w.player.Hitbox().Overlaps(p.Hitbox(w.slope))
}

// updateObstacles scrolls, culls and spawns obstacles, then reports whether
// the player crashed into one.
func (w *World) updateObstacles(step float64) bool {
	for i := range w.obstacles {
		w.obstacles[i].X -= step
	}
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.X >= -o.Size {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept

	if o, ok := w.spawner.Next(w.distance, w.maxSpacing(), w.metrics); ok {
		w.obstacles = append(w.obstacles, o)
	}

	hitbox := w.player.Hitbox()
	onTop := false
	for _, o := range w.obstacles {
		switch Collide(hitbox, o.Hitbox(w.slope), w.cfg.Obstacles.ClearanceRatio) {
		case CollisionHit:
			return true
		case CollisionCleared:
			if w.player.IsJumping && w.player.VelocityY > 0 {
				onTop = true
			}
		}
	}
	w.player.IsOnObstacle = onTop
	return false
}
