package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultJezzballConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 1.0
	dm := NewDifficultyManager(cfg)

	if dm.Level() != 0 {
		t.Errorf("Level() = %v, expected 0", dm.Level())
	}
	if got := dm.Speed(3); got != 3 {
		t.Errorf("Speed(3) = %v, expected 3", got)
	}
	if got := dm.GrowthPeriod(100 * time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("GrowthPeriod() = %v, expected 100ms", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultJezzballConfig().Difficulty
	cfg.InitialLevel = 1.0
	dm := NewDifficultyManager(cfg)

	// speed_multiplier 1.0 doubles speed, growth_slowdown 0.5 adds half a period
	if got := dm.Speed(3); got != 6 {
		t.Errorf("Speed(3) = %v, expected 6", got)
	}
	if got := dm.GrowthPeriod(100 * time.Millisecond); got != 150*time.Millisecond {
		t.Errorf("GrowthPeriod() = %v, expected 150ms", got)
	}
}

func TestDifficultyLevelClamped(t *testing.T) {
	tests := []struct {
		level    float64
		expected float64
	}{
		{5, 1},
		{-2, 0},
		{0.4, 0.4},
	}

	for _, tt := range tests {
		cfg := DefaultJezzballConfig().Difficulty
		cfg.InitialLevel = tt.level
		if got := NewDifficultyManager(cfg).Level(); got != tt.expected {
			t.Errorf("Level() with initial_level %v = %v, expected %v", tt.level, got, tt.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		cfg := DefaultJezzballConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("ApplyPreset(%s) Enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.level {
			t.Errorf("ApplyPreset(%s) InitialLevel = %v, expected %v", tt.preset, cfg.Difficulty.InitialLevel, tt.level)
		}
	}

	cfg := DefaultJezzballConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultJezzballConfig() {
		t.Error("ApplyPreset(\"\") modified the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q", ParsePreset("hard"))
	}
	if ParsePreset("insane") != "" {
		t.Errorf("ParsePreset(insane) = %q, expected empty", ParsePreset("insane"))
	}
}
