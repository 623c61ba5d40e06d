package ski

import (
	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Present is the goal object of a present-mode run.
type Present struct {
	Visible bool
	X       float64 // horizontal center
	Size    float64
	Image   *assets.Image
}

// place puts the present just past the right edge of the viewport.
func (p *Present) place(m Metrics) {
	p.Visible = true
	p.Size = m.PresentSize
	p.X = m.ViewW + p.Size
}

// Hitbox returns the present's rectangle resting on the slope.
func (p *Present) Hitbox(s Slope) core.RectF {
	o := Obstacle{X: p.X, Size: p.Size, Image: p.Image}
	return o.Hitbox(s)
}
