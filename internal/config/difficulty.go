package config

import (
	"math"
	"time"
)

// DifficultyManager derives effective game parameters from the difficulty level.
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

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled scaling always reports 0.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.initialLevel
}

// Speed scales a base ball speed component.
func (d *DifficultyManager) Speed(base float64) float64 {
	return base * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)
}

// GrowthPeriod scales the base barrier growth period.
func (d *DifficultyManager) GrowthPeriod(base time.Duration) time.Duration {
	factor := 1.0 + d.Level()*d.cfg.Scaling.GrowthSlowdown
	return time.Duration(math.Round(float64(base) * factor))
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
