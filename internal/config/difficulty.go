package config

import "math"

// DifficultyManager calculates dynamic game parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the distance
// skied and the ticks played.
func (d *DifficultyManager) Level(distance float64, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = distance / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to the base scroll speed.
// It grows from 1 to 1 + speed_multiplier as the level goes from 0 to 1.
func (d *DifficultyManager) SpeedFactor(distance float64, ticks int) float64 {
	return 1.0 + d.Level(distance, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// MaxSpacing returns the upper spawn spacing for the current level, never
// below minSpacing.
func (d *DifficultyManager) MaxSpacing(minSpacing, maxSpacing, distance float64, ticks int) float64 {
	reduced := maxSpacing - d.Level(distance, ticks)*d.cfg.Scaling.SpacingReduction
	return math.Max(minSpacing, reduced)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
