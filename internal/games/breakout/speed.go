package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
)

// SpeedRamp computes the ball speed multiplier from level progress and
// elapsed time.
type SpeedRamp struct {
	cfg config.SpeedRampConfig
}

// NewSpeedRamp creates a ramp for the given (sanitized) configuration.
func NewSpeedRamp(cfg config.SpeedRampConfig) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// Ramp returns the progress component of the multiplier, before boost and clamping.
func (s SpeedRamp) Ramp(cleared, elapsed float64) float64 {
	cleared = clamp01(cleared)
	elapsed = math.Max(0, elapsed)

	if s.cfg.Policy == config.RampContinuous {
		return 1 + s.cfg.TimeCoef*elapsed/10 + s.cfg.ClearCoef*cleared
	}

	tier := s.clearTier(cleared)
	mult := 1.0
	if tier >= 0 && tier < len(s.cfg.ClearMults) {
		mult = s.cfg.ClearMults[tier]
	}
	return mult * (1 + s.cfg.TimeStepInc*float64(s.timeSteps(elapsed)))
}

// Multiplier returns the final speed multiplier, clamped to
// [BoostFloor, MaxMultiplier].
func (s SpeedRamp) Multiplier(cleared, elapsed, boost float64) float64 {
	final := s.Ramp(cleared, elapsed) * boost
	if math.IsNaN(final) {
		return s.cfg.BoostFloor
	}
	return math.Max(s.cfg.BoostFloor, math.Min(s.cfg.MaxMultiplier, final))
}

// Tier returns a monotone step index; it rises whenever the ramp steps up.
func (s SpeedRamp) Tier(cleared, elapsed float64) int {
	if s.cfg.Policy == config.RampContinuous {
		return int(math.Floor((s.Ramp(cleared, elapsed) - 1) * 10))
	}
	return max(0, s.clearTier(clamp01(cleared))) + s.timeSteps(math.Max(0, elapsed))
}

// clearTier returns the index of the highest threshold <= cleared, or -1.
func (s SpeedRamp) clearTier(cleared float64) int {
	idx := -1
	for i, th := range s.cfg.ClearTiers {
		if cleared >= th {
			idx = i
		}
	}
	return idx
}

func (s SpeedRamp) timeSteps(elapsed float64) int {
	if s.cfg.TimeStepSec <= 0 {
		return 0
	}
	return min(int(math.Floor(elapsed/s.cfg.TimeStepSec)), s.cfg.TimeMaxSteps)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
