package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset returns a sanitized copy of cfg adjusted for a difficulty preset.
func ApplyPreset(cfg Config, preset DifficultyPreset) Config {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 120
		cfg.Ball.BaseSpeed = 240
		cfg.Items.DropChance = 0.10
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.BaseSpeed = 340
		cfg.SpeedRamp.MaxMultiplier = 3.5
	case DifficultyFixed:
		// No progression: a single tier and no time steps.
		cfg.SpeedRamp.ClearTiers = []float64{0}
		cfg.SpeedRamp.ClearMults = []float64{1}
		cfg.SpeedRamp.TimeStepInc = 0
		cfg.SpeedRamp.TimeCoef = 0
		cfg.SpeedRamp.ClearCoef = 0
	}
	return cfg.Sanitize()
}
