// Package config provides YAML and TOML game configuration loading and
// difficulty management for JezzBall.
package config

// JezzballConfig contains all tunable parameters of the engine.
type JezzballConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field" json:"field"`
	Ball       BallConfig       `yaml:"ball" toml:"ball" json:"ball"`
	Barrier    BarrierConfig    `yaml:"barrier" toml:"barrier" json:"barrier"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
}

// FieldConfig defines the play field grid.
type FieldConfig struct {
	CellSize int `yaml:"cell_size" toml:"cell_size" json:"cell_size" jsonschema:"minimum=1"`
	Width    int `yaml:"width" toml:"width" json:"width"`    // 0 = derive from screen
	Height   int `yaml:"height" toml:"height" json:"height"` // 0 = derive from screen
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius   float64 `yaml:"radius" toml:"radius" json:"radius"`
	SpeedX   float64 `yaml:"speed_x" toml:"speed_x" json:"speed_x"`
	SpeedY   float64 `yaml:"speed_y" toml:"speed_y" json:"speed_y"`
	EdgeMode string  `yaml:"edge_mode" toml:"edge_mode" json:"edge_mode" jsonschema:"enum=recenter,enum=bounce"`
}

// BarrierConfig defines barrier growth timing.
type BarrierConfig struct {
	GrowthPeriodMS int `yaml:"growth_period_ms" toml:"growth_period_ms" json:"growth_period_ms" jsonschema:"minimum=1"`
}

// DifficultyConfig scales ball speed and growth timing.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled" toml:"enabled" json:"enabled"`
	InitialLevel float64       `yaml:"initial_level" toml:"initial_level" json:"initial_level"` // 0.0 = base, 1.0 = hardest
	Scaling      ScalingConfig `yaml:"scaling" toml:"scaling" json:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier" json:"speed_multiplier"` // Added to ball speed factor
	GrowthSlowdown  float64 `yaml:"growth_slowdown" toml:"growth_slowdown" json:"growth_slowdown"`    // Added to growth period factor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
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

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *JezzballConfig, preset DifficultyPreset) {
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
