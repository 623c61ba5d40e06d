package ski

import "math/rand"

// neverTick marks a timer that has not fired yet. It is far enough in the
// past that every cooldown and window comparison treats it as expired.
const neverTick = -1 << 40

// Particle is a short-lived snow puff emitted behind the skier on boost.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Age     int // ticks
	Opacity float64
}

// BoostTimings are the boost parameters converted to ticks.
type BoostTimings struct {
	Multiplier       float64
	DurationTicks    int
	CooldownTicks    int
	DoubleTapTicks   int
	RepeatTicks      int // taps closer than this come from a held key
	ParticleCount    int
	ParticleLifetime int
}

// Boost tracks the double-tap speed burst and its particles.
type Boost struct {
	BoostTimings

	IsBoosting  bool
	StartedAt   int
	LastBoostAt int
	LastTapAt   int
	Particles   []Particle

	held bool // the last taps were key auto-repeat
}

func newBoost(t BoostTimings) Boost {
	return Boost{
		BoostTimings: t,
		StartedAt:    neverTick,
		LastBoostAt:  neverTick,
		LastTapAt:    neverTick,
	}
}

// Ready reports whether a double tap at tick would trigger a boost.
func (b *Boost) Ready(tick int) bool {
	return !b.IsBoosting && tick-b.LastBoostAt >= b.CooldownTicks
}

// Charge returns how far the cooldown has progressed, from 0 to 1.
func (b *Boost) Charge(tick int) float64 {
	if b.IsBoosting {
		return 0
	}
	if b.CooldownTicks <= 0 {
		return 1
	}
	c := float64(tick-b.LastBoostAt) / float64(b.CooldownTicks)
	return min(1, max(0, c))
}

// Tap registers one boost tap. Two taps inside the double-tap window trigger
// the boost when the cooldown has elapsed. Returns true when triggered.
//
// Terminals report no key release, so a held key shows up as a stream of
// taps a few ticks apart. Taps closer than RepeatTicks extend that stream
// and never trigger, and the first tap after a stream only starts a new pair.
func (b *Boost) Tap(tick int) bool {
	gap := tick - b.LastTapAt
	b.LastTapAt = tick
	if gap < b.RepeatTicks {
		b.held = true
		return false
	}
	if b.held {
		b.held = false
		return false
	}
	if gap > b.DoubleTapTicks || !b.Ready(tick) {
		return false
	}

	b.IsBoosting = true
	b.StartedAt = tick
	b.LastBoostAt = tick
	b.LastTapAt = neverTick
	return true
}

// Expire ends the boost once it has run for its full duration.
func (b *Boost) Expire(tick int) {
	if b.IsBoosting && tick-b.StartedAt >= b.DurationTicks {
		b.IsBoosting = false
	}
}

// SpeedMultiplier returns the factor applied to the scroll speed.
func (b *Boost) SpeedMultiplier() float64 {
	if b.IsBoosting {
		return b.Multiplier
	}
	return 1
}

// Emit adds a burst of particles at (x, y) drifting left and up.
func (b *Boost) Emit(x, y, scale float64, rng *rand.Rand) {
	for range b.ParticleCount {
		b.Particles = append(b.Particles, Particle{
			X:       x + (rng.Float64()-0.5)*10*scale,
			Y:       y + (rng.Float64()-0.5)*20*scale,
			VX:      -(1 + rng.Float64()*3) * scale,
			VY:      -rng.Float64() * 1.5 * scale,
			Opacity: 1,
		})
	}
}

// AgeParticles moves and fades particles, dropping the expired ones.
func (b *Boost) AgeParticles() {
	alive := b.Particles[:0]
	for _, p := range b.Particles {
		p.Age++
		if p.Age >= b.ParticleLifetime {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY *= 0.95
		p.Opacity = 1 - float64(p.Age)/float64(b.ParticleLifetime)
		alive = append(alive, p)
	}
	b.Particles = alive
}
