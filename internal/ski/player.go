package ski

import "github.com/vovakirdan/tui-ski/internal/core"

// Player is the skier. Y is the bottom edge in screen space.
type Player struct {
	X, Y          float64
	VelocityY     float64
	Width, Height float64
	IsJumping     bool
	IsOnObstacle  bool // standing on an obstacle's top band, may jump again
	HitboxInset   float64
}

func newPlayer(m Metrics, s Slope, inset float64) Player {
	return Player{
		X:           m.PlayerX,
		Y:           s.GroundHeightAt(m.PlayerX),
		Width:       m.PlayerW,
		Height:      m.PlayerH,
		HitboxInset: inset,
	}
}

// CanJump reports whether a jump would be accepted right now.
func (p *Player) CanJump() bool {
	return !p.IsJumping || p.IsOnObstacle
}

// Jump starts a jump with the given (negative) impulse. Returns false when
// the player is airborne and not standing on an obstacle.
func (p *Player) Jump(power float64) bool {
	if !p.CanJump() {
		return false
	}
	p.VelocityY = power
	p.IsJumping = true
	p.IsOnObstacle = false
	return true
}

// Integrate advances vertical motion by one tick against the given ground
// height. Returns true on the tick the player lands.
func (p *Player) Integrate(gravity, ground float64) bool {
	if !p.IsJumping {
		p.Y = ground
		return false
	}

	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y >= ground {
		p.Y = ground
		p.VelocityY = 0
		p.IsJumping = false
		p.IsOnObstacle = false
		return true
	}
	return false
}

// Hitbox returns the collision rectangle, inset horizontally on both sides.
func (p *Player) Hitbox() core.RectF {
	inset := p.Width * p.HitboxInset
	return core.RectF{
		Left:   p.X + inset,
		Top:    p.Y - p.Height,
		Right:  p.X + p.Width - inset,
		Bottom: p.Y,
	}
}
