package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Default returns the built-in Breakout configuration.
func Default() Config {
	return Config{
		Ball: BallConfig{
			BaseSpeed: 280,
			Radius:    6,
		},
		Paddle: PaddleConfig{
			Width:        90,
			Height:       12,
			Speed:        360,
			MinWidth:     50,
			MaxWidth:     180,
			BottomOffset: 28,
		},
		Brick: BrickConfig{
			Width:      64,
			Height:     18,
			Pad:        8,
			TopOffset:  56,
			SideMargin: 12,
			BottomSafe: 110,
		},
		SpeedRamp: SpeedRampConfig{
			Policy:        RampTiered,
			ClearTiers:    []float64{0.00, 0.25, 0.50, 0.75, 0.90},
			ClearMults:    []float64{1.00, 1.20, 1.40, 1.65, 1.90},
			TimeStepSec:   15,
			TimeStepInc:   0.08,
			TimeMaxSteps:  5,
			TimeCoef:      0.05,
			ClearCoef:     0.6,
			MaxMultiplier: 3.0,
			BoostFloor:    0.6,
		},
		Bounce: BounceConfig{
			Policy:             BounceAngle,
			MaxDeflectDeg:      60,
			MinDeflectDeg:      10,
			PaddleInfluenceDeg: 12,
			VelocityNormalizer: 360,
			Nudge:              80,
		},
		Items: ItemsConfig{
			DropChance:          0.05,
			FallSpeed:           140,
			Size:                14,
			PassThroughDuration: 8.0,
			WidthDelta:          18,
			BoostDelta:          0.12,
			MultiballSpread:     0.2,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			StartLevel: 1,
			MaxLevel:   99,
			MaxDT:      0.033,
		},
	}
}

// Classic returns the variant tuning: continuous speed ramp, nudge-style
// paddle bounce and a more generous drop rate.
func Classic() Config {
	return AsClassic(Default())
}

// AsClassic switches cfg to the classic policies, keeping every other value.
func AsClassic(cfg Config) Config {
	cfg.SpeedRamp.Policy = RampContinuous
	cfg.Bounce.Policy = BounceNudge
	cfg.Items.DropChance = 0.12
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
