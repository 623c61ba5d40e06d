// Package config provides YAML-based game configuration loading and
// difficulty management for the ski game.
package config

// SkiConfig contains all tunables of the ski game. Lengths are in design
// pixels of the 800x400 base viewport and are multiplied by the viewport
// scale at runtime; durations are in milliseconds and converted to ticks.
type SkiConfig struct {
	Physics    SkiPhysics       `yaml:"physics"`
	Slope      SkiSlope         `yaml:"slope"`
	Player     SkiPlayer        `yaml:"player"`
	Obstacles  SkiObstacles     `yaml:"obstacles"`
	Boost      SkiBoost         `yaml:"boost"`
	Progress   SkiProgress      `yaml:"progress"`
	Animation  SkiAnimation     `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkiPhysics defines per-tick physics parameters.
type SkiPhysics struct {
	Gravity         float64 `yaml:"gravity"`           // added to vertical velocity each tick
	JumpPower       float64 `yaml:"jump_power"`        // initial vertical velocity of a jump (negative = up)
	BaseScrollSpeed float64 `yaml:"base_scroll_speed"` // world scroll per tick
}

// SkiSlope defines the ground line.
type SkiSlope struct {
	Grade        float64 `yaml:"grade"`         // rise over run, 0.20 = 20%
	GroundOffset float64 `yaml:"ground_offset"` // distance of the baseline from the viewport bottom
}

// SkiPlayer defines the skier.
type SkiPlayer struct {
	X           float64 `yaml:"x"`            // fixed lane
	SpriteW     int     `yaml:"sprite_w"`     // sprite width in art pixels
	SpriteH     int     `yaml:"sprite_h"`     // sprite height in art pixels
	HitboxInset float64 `yaml:"hitbox_inset"` // fraction of the width trimmed from each side
}

// ObstacleType is one catalog entry the spawner picks from.
type ObstacleType struct {
	Name           string  `yaml:"name"`
	Image          string  `yaml:"image"`
	SizeMultiplier float64 `yaml:"size_multiplier"`
	Rotation       int     `yaml:"rotation"` // degrees, quarter turns only
}

// SkiObstacles defines spawning and collision parameters.
type SkiObstacles struct {
	BaseSize       float64        `yaml:"base_size"`
	MinSpacing     float64        `yaml:"min_spacing"` // meters between spawns
	MaxSpacing     float64        `yaml:"max_spacing"`
	ClearanceRatio float64        `yaml:"clearance_ratio"` // fraction of obstacle height, measured from its top
	Catalog        []ObstacleType `yaml:"catalog"`
}

// SkiBoost defines the double-tap boost.
type SkiBoost struct {
	Multiplier         float64 `yaml:"multiplier"`
	DurationMs         int     `yaml:"duration_ms"`
	CooldownMs         int     `yaml:"cooldown_ms"`
	DoubleTapMs        int     `yaml:"double_tap_ms"`
	RepeatMs           int     `yaml:"repeat_ms"` // taps closer than this are key auto-repeat; 0 disables
	ParticleCount      int     `yaml:"particle_count"`
	ParticleLifetimeMs int     `yaml:"particle_lifetime_ms"`
}

// SkiProgress defines distance bookkeeping and the goal.
type SkiProgress struct {
	TotalDistance  float64 `yaml:"total_distance"`  // meters to the present
	MetersPerUnit  float64 `yaml:"meters_per_unit"` // meters per unscaled scroll pixel
	PresentAt      float64 `yaml:"present_at"`      // fraction of the total at which the present appears
	PresentSize    float64 `yaml:"present_size"`
	MilestoneEvery float64 `yaml:"milestone_every"` // endless mode banner interval in meters
}

// SkiAnimation defines terminal-state and banner animation timings.
type SkiAnimation struct {
	ShakeMs       int `yaml:"shake_ms"`
	FadeMs        int `yaml:"fade_ms"`
	LineStaggerMs int `yaml:"line_stagger_ms"`
	MilestoneMs   int `yaml:"milestone_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // meters or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to the speed factor at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // meters removed from max spacing at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
