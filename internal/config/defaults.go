package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSkiConfig returns the built-in ski configuration.
// It mirrors defaults/ski.yaml and is used when the embedded file cannot be parsed.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		Physics: SkiPhysics{
			Gravity:         0.5,
			JumpPower:       -12,
			BaseScrollSpeed: 5,
		},
		Slope: SkiSlope{
			Grade:        0.2,
			GroundOffset: 80,
		},
		Player: SkiPlayer{
			X:           150,
			SpriteW:     20,
			SpriteH:     22,
			HitboxInset: 0.25,
		},
		Obstacles: SkiObstacles{
			BaseSize:       60,
			MinSpacing:     60,
			MaxSpacing:     120,
			ClearanceRatio: 0.3,
			Catalog: []ObstacleType{
				{Name: "rock", Image: "rock", SizeMultiplier: 0.8, Rotation: 0},
				{Name: "stump", Image: "stump", SizeMultiplier: 1.0, Rotation: 0},
				{Name: "snowman", Image: "snowman", SizeMultiplier: 1.3, Rotation: 0},
				{Name: "sled", Image: "sled", SizeMultiplier: 0.9, Rotation: 180},
			},
		},
		Boost: SkiBoost{
			Multiplier:         2.5,
			DurationMs:         2000,
			CooldownMs:         5000,
			DoubleTapMs:        300,
			RepeatMs:           50,
			ParticleCount:      8,
			ParticleLifetimeMs: 800,
		},
		Progress: SkiProgress{
			TotalDistance:  3000,
			MetersPerUnit:  0.1,
			PresentAt:      0.9,
			PresentSize:    50,
			MilestoneEvery: 500,
		},
		Animation: SkiAnimation{
			ShakeMs:       500,
			FadeMs:        600,
			LineStaggerMs: 400,
			MilestoneMs:   1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 40,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `ski config` dumps.
func DefaultYAML() []byte {
	return defaultSkiYAML
}
