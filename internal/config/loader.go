package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSki loads the ski configuration.
// Search order: customPath -> ~/.ski/configs/ski.yaml -> ./configs/ski.yaml -> embedded default.
// Files only need to list the keys they change; everything else keeps its default.
func LoadSki(customPath string) (SkiConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkiConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSki(data)
		if err != nil {
			return DefaultSkiConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("ski.yaml"), filepath.Join("configs", "ski.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseSki(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseSki(defaultSkiYAML)
	if err != nil {
		return DefaultSkiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSki decodes YAML on top of the built-in defaults and normalizes the result.
func parseSki(data []byte) (SkiConfig, error) {
	cfg := DefaultSkiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ski", "configs", filename)
}

// Normalize repairs values that would break the simulation. Broken values fall
// back to their defaults rather than failing; an empty catalog is kept as is
// and simply spawns nothing.
func (c *SkiConfig) Normalize() {
	def := DefaultSkiConfig()

	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpPower >= 0 {
		c.Physics.JumpPower = def.Physics.JumpPower
	}
	if c.Physics.BaseScrollSpeed <= 0 {
		c.Physics.BaseScrollSpeed = def.Physics.BaseScrollSpeed
	}
	if c.Player.SpriteW <= 0 || c.Player.SpriteH <= 0 {
		c.Player.SpriteW, c.Player.SpriteH = def.Player.SpriteW, def.Player.SpriteH
	}
	if c.Player.HitboxInset < 0 || c.Player.HitboxInset >= 0.5 {
		c.Player.HitboxInset = def.Player.HitboxInset
	}
	if c.Obstacles.BaseSize <= 0 {
		c.Obstacles.BaseSize = def.Obstacles.BaseSize
	}
	if c.Obstacles.MinSpacing < 0 {
		c.Obstacles.MinSpacing = 0
	}
	if c.Obstacles.MaxSpacing < c.Obstacles.MinSpacing {
		c.Obstacles.MinSpacing, c.Obstacles.MaxSpacing = c.Obstacles.MaxSpacing, c.Obstacles.MinSpacing
		if c.Obstacles.MinSpacing < 0 {
			c.Obstacles.MinSpacing = 0
		}
	}
	if c.Obstacles.ClearanceRatio < 0 || c.Obstacles.ClearanceRatio > 1 {
		c.Obstacles.ClearanceRatio = def.Obstacles.ClearanceRatio
	}
	for i := range c.Obstacles.Catalog {
		if c.Obstacles.Catalog[i].SizeMultiplier <= 0 {
			c.Obstacles.Catalog[i].SizeMultiplier = 1
		}
		c.Obstacles.Catalog[i].Rotation = normalizeRotation(c.Obstacles.Catalog[i].Rotation)
	}
	if c.Boost.Multiplier < 1 {
		c.Boost.Multiplier = def.Boost.Multiplier
	}
	if c.Boost.DurationMs <= 0 {
		c.Boost.DurationMs = def.Boost.DurationMs
	}
	if c.Boost.CooldownMs < 0 {
		c.Boost.CooldownMs = def.Boost.CooldownMs
	}
	if c.Boost.DoubleTapMs <= 0 {
		c.Boost.DoubleTapMs = def.Boost.DoubleTapMs
	}
	if c.Boost.RepeatMs < 0 || c.Boost.RepeatMs >= c.Boost.DoubleTapMs {
		c.Boost.RepeatMs = min(def.Boost.RepeatMs, c.Boost.DoubleTapMs/2)
	}
	if c.Boost.ParticleCount < 0 {
		c.Boost.ParticleCount = 0
	}
	if c.Boost.ParticleLifetimeMs <= 0 {
		c.Boost.ParticleLifetimeMs = def.Boost.ParticleLifetimeMs
	}
	if c.Progress.TotalDistance <= 0 {
		c.Progress.TotalDistance = def.Progress.TotalDistance
	}
	if c.Progress.MetersPerUnit <= 0 {
		c.Progress.MetersPerUnit = def.Progress.MetersPerUnit
	}
	if c.Progress.PresentAt <= 0 || c.Progress.PresentAt > 1 {
		c.Progress.PresentAt = def.Progress.PresentAt
	}
	if c.Progress.PresentSize <= 0 {
		c.Progress.PresentSize = def.Progress.PresentSize
	}
}

// normalizeRotation snaps a rotation to the nearest quarter turn in [0, 360).
func normalizeRotation(deg int) int {
	q := ((deg%360+360)%360 + 45) / 90
	return (q % 4) * 90
}

// ApplySkiPreset modifies the config based on a difficulty preset.
func ApplySkiPreset(cfg *SkiConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
