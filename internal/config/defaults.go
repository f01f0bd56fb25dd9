package config

import (
	_ "embed"
)

//go:embed defaults/jezzball.yaml
var defaultJezzballYAML []byte

// DefaultJezzballConfig returns the built-in configuration.
// It matches defaults/jezzball.yaml and is used if the embedded file fails to parse.
func DefaultJezzballConfig() JezzballConfig {
	return JezzballConfig{
		Field: FieldConfig{
			CellSize: 20,
		},
		Ball: BallConfig{
			Radius:   5,
			SpeedX:   3,
			SpeedY:   3,
			EdgeMode: "recenter",
		},
		Barrier: BarrierConfig{
			GrowthPeriodMS: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GrowthSlowdown:  0.5,
			},
		},
	}
}
