// Package config provides YAML-based game configuration loading, clamping
// and difficulty presets for brickfall.
package config

// Config contains all tunable values for a Breakout round.
// It is built once (load, preset, overrides, Sanitize) and treated as
// immutable by the simulation; changing settings means building a new
// Config and reinitializing the round.
type Config struct {
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Brick     BrickConfig     `yaml:"brick"`
	SpeedRamp SpeedRampConfig `yaml:"speed_ramp"`
	Bounce    BounceConfig    `yaml:"bounce"`
	Items     ItemsConfig     `yaml:"items"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// BallConfig defines ball size and base speed (pixels, pixels/second).
type BallConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Radius    float64 `yaml:"radius"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from viewport bottom to paddle top
}

// BrickConfig defines brick geometry and grid margins.
type BrickConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Pad        float64 `yaml:"pad"`
	TopOffset  float64 `yaml:"top_offset"`
	SideMargin float64 `yaml:"side_margin"`
	BottomSafe float64 `yaml:"bottom_safe"` // Space kept free above the viewport bottom
}

// Speed ramp policies.
const (
	RampTiered     = "tiered"
	RampContinuous = "continuous"
)

// SpeedRampConfig defines how ball speed grows with progress and time.
type SpeedRampConfig struct {
	Policy string `yaml:"policy"` // "tiered" or "continuous"

	// Tiered policy
	ClearTiers   []float64 `yaml:"clear_tiers"` // Ascending cleared-fraction thresholds
	ClearMults   []float64 `yaml:"clear_mults"` // Multiplier per tier
	TimeStepSec  float64   `yaml:"time_step_sec"`
	TimeStepInc  float64   `yaml:"time_step_inc"`
	TimeMaxSteps int       `yaml:"time_max_steps"`

	// Continuous policy
	TimeCoef  float64 `yaml:"time_coef"`  // Added per 10 seconds
	ClearCoef float64 `yaml:"clear_coef"` // Added at 100% cleared

	MaxMultiplier float64 `yaml:"max_multiplier"`
	BoostFloor    float64 `yaml:"boost_floor"`
}

// Paddle bounce policies.
const (
	BounceAngle = "angle"
	BounceNudge = "nudge"
)

// BounceConfig defines how the paddle shapes the reflection angle.
type BounceConfig struct {
	Policy             string  `yaml:"policy"` // "angle" or "nudge"
	MaxDeflectDeg      float64 `yaml:"max_deflect_deg"`
	MinDeflectDeg      float64 `yaml:"min_deflect_deg"`
	PaddleInfluenceDeg float64 `yaml:"paddle_influence_deg"`
	VelocityNormalizer float64 `yaml:"velocity_normalizer"` // Paddle speed giving full influence
	Nudge              float64 `yaml:"nudge"`               // vx added at the paddle edge (nudge policy)
}

// ItemsConfig defines power-up drops and effects.
type ItemsConfig struct {
	DropChance          float64 `yaml:"drop_chance"`
	FallSpeed           float64 `yaml:"fall_speed"`
	Size                float64 `yaml:"size"`
	PassThroughDuration float64 `yaml:"pass_through_duration"`
	WidthDelta          float64 `yaml:"width_delta"`
	BoostDelta          float64 `yaml:"boost_delta"`
	MultiballSpread     float64 `yaml:"multiball_spread"` // Radians
}

// GameplayConfig defines lives, levels and frame timing.
type GameplayConfig struct {
	Lives      int     `yaml:"lives"`
	StartLevel int     `yaml:"start_level"`
	MaxLevel   int     `yaml:"max_level"`
	MaxDT      float64 `yaml:"max_dt"` // Longest step applied in one tick (seconds)
}

// Overrides holds values changed from the settings panel or CLI flags.
// Zero values leave the corresponding setting untouched.
type Overrides struct {
	Lives      int
	StartLevel int
	DropChance *float64
	FallSpeed  float64
}

// WithOverrides returns a sanitized copy of cfg with the overrides applied.
func (c Config) WithOverrides(o Overrides) Config {
	if o.Lives > 0 {
		c.Gameplay.Lives = o.Lives
	}
	if o.StartLevel > 0 {
		c.Gameplay.StartLevel = o.StartLevel
	}
	if o.DropChance != nil {
		c.Items.DropChance = *o.DropChance
	}
	if o.FallSpeed > 0 {
		c.Items.FallSpeed = o.FallSpeed
	}
	return c.Sanitize()
}
