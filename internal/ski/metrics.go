package ski

import (
	"math"

	"github.com/vovakirdan/tui-ski/internal/config"
)

// Design viewport the configuration is expressed in.
const (
	BaseWidth  = 800
	BaseHeight = 400
)

// Metrics holds every viewport-dependent quantity. It is recomputed whenever
// the viewport changes so that gameplay feels the same at any size.
type Metrics struct {
	ViewW, ViewH float64 // viewport in virtual pixels
	Scale        float64 // uniform scale against the design viewport
	PixelSize    float64 // art pixel size, never below 4
	GroundY      float64 // ground baseline at the viewport center

	Gravity     float64
	JumpPower   float64
	ScrollSpeed float64 // pixels per tick before boost

	PlayerX, PlayerW, PlayerH float64
	ObstacleBase              float64
	PresentSize               float64
}

// NewMetrics derives the metrics for a viewport. Non-positive sizes fall back
// to the design viewport.
func NewMetrics(viewW, viewH float64, cfg *config.SkiConfig) Metrics {
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = BaseWidth, BaseHeight
	}
	scale := math.Min(viewW/BaseWidth, viewH/BaseHeight)
	pixel := math.Max(4, math.Floor(4*scale))

	return Metrics{
		ViewW:        viewW,
		ViewH:        viewH,
		Scale:        scale,
		PixelSize:    pixel,
		GroundY:      viewH - cfg.Slope.GroundOffset*scale,
		Gravity:      cfg.Physics.Gravity * scale,
		JumpPower:    cfg.Physics.JumpPower * scale,
		ScrollSpeed:  cfg.Physics.BaseScrollSpeed * scale,
		PlayerX:      cfg.Player.X * scale,
		PlayerW:      float64(cfg.Player.SpriteW) * pixel,
		PlayerH:      float64(cfg.Player.SpriteH) * pixel,
		ObstacleBase: cfg.Obstacles.BaseSize * scale,
		PresentSize:  cfg.Progress.PresentSize * scale,
	}
}

// Slope returns the ground line for these metrics.
func (m Metrics) Slope(grade float64) Slope {
	return Slope{
		BaseGroundY: m.GroundY,
		CenterX:     m.ViewW / 2,
		Grade:       grade,
	}
}
