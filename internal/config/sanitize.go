package config

import "math"

// Sanitize returns a copy of c with every value clamped into a usable range.
// Out-of-range values are never rejected.
func (c Config) Sanitize() Config {
	c.Ball.BaseSpeed = clampF(c.Ball.BaseSpeed, 20, 2000)
	c.Ball.Radius = clampF(c.Ball.Radius, 1, 50)

	c.Paddle.MinWidth = clampF(c.Paddle.MinWidth, 4, 1000)
	c.Paddle.MaxWidth = clampF(c.Paddle.MaxWidth, c.Paddle.MinWidth, 2000)
	c.Paddle.Width = clampF(c.Paddle.Width, c.Paddle.MinWidth, c.Paddle.MaxWidth)
	c.Paddle.Height = clampF(c.Paddle.Height, 1, 100)
	c.Paddle.Speed = clampF(c.Paddle.Speed, 0, 5000)
	c.Paddle.BottomOffset = clampF(c.Paddle.BottomOffset, c.Paddle.Height, 500)

	c.Brick.Width = clampF(c.Brick.Width, 1, 1000)
	c.Brick.Height = clampF(c.Brick.Height, 1, 1000)
	c.Brick.Pad = clampF(c.Brick.Pad, 0, 200)
	c.Brick.TopOffset = clampF(c.Brick.TopOffset, 0, 1000)
	c.Brick.SideMargin = clampF(c.Brick.SideMargin, 0, 1000)
	c.Brick.BottomSafe = clampF(c.Brick.BottomSafe, 0, 1000)

	c.SpeedRamp = c.SpeedRamp.sanitize()
	c.Bounce = c.Bounce.sanitize()

	c.Items.DropChance = clampF(c.Items.DropChance, 0, 1)
	c.Items.FallSpeed = clampF(c.Items.FallSpeed, 20, 600)
	c.Items.Size = clampF(c.Items.Size, 2, 100)
	c.Items.PassThroughDuration = clampF(c.Items.PassThroughDuration, 0, 60)
	c.Items.WidthDelta = clampF(c.Items.WidthDelta, 0, 500)
	c.Items.BoostDelta = clampF(c.Items.BoostDelta, 0, 2)
	c.Items.MultiballSpread = clampF(c.Items.MultiballSpread, 0, math.Pi/2)

	c.Gameplay.Lives = clamp(c.Gameplay.Lives, 1, 99)
	c.Gameplay.MaxLevel = clamp(c.Gameplay.MaxLevel, 1, 99)
	c.Gameplay.StartLevel = clamp(c.Gameplay.StartLevel, 1, c.Gameplay.MaxLevel)
	c.Gameplay.MaxDT = clampF(c.Gameplay.MaxDT, 0.001, 0.1)

	return c
}

func (s SpeedRampConfig) sanitize() SpeedRampConfig {
	if s.Policy != RampContinuous {
		s.Policy = RampTiered
	}
	s.MaxMultiplier = clampF(s.MaxMultiplier, 1, 10)
	s.BoostFloor = clampF(s.BoostFloor, 0.1, 1)
	s.TimeStepSec = clampF(s.TimeStepSec, 1, 3600)
	s.TimeStepInc = clampF(s.TimeStepInc, 0, 1)
	s.TimeMaxSteps = clamp(s.TimeMaxSteps, 0, 100)
	s.TimeCoef = clampF(s.TimeCoef, 0, 1)
	s.ClearCoef = clampF(s.ClearCoef, 0, 5)

	// Tier table: equal lengths, thresholds in [0,1] ascending starting at 0,
	// multipliers non-decreasing.
	n := min(len(s.ClearTiers), len(s.ClearMults))
	tiers := make([]float64, 0, n+1)
	mults := make([]float64, 0, n+1)
	if n == 0 || s.ClearTiers[0] > 0 {
		tiers = append(tiers, 0)
		mults = append(mults, 1)
	}
	for i := range n {
		t := clampF(s.ClearTiers[i], 0, 1)
		m := clampF(s.ClearMults[i], 0.1, s.MaxMultiplier)
		if len(tiers) > 0 {
			t = math.Max(t, tiers[len(tiers)-1])
			m = math.Max(m, mults[len(mults)-1])
		}
		tiers = append(tiers, t)
		mults = append(mults, m)
	}
	s.ClearTiers = tiers
	s.ClearMults = mults
	return s
}

func (b BounceConfig) sanitize() BounceConfig {
	if b.Policy != BounceNudge {
		b.Policy = BounceAngle
	}
	b.MaxDeflectDeg = clampF(b.MaxDeflectDeg, 0, 80)
	b.MinDeflectDeg = clampF(b.MinDeflectDeg, 0, b.MaxDeflectDeg)
	b.PaddleInfluenceDeg = clampF(b.PaddleInfluenceDeg, 0, 45)
	b.VelocityNormalizer = clampF(b.VelocityNormalizer, 1, 10000)
	b.Nudge = clampF(b.Nudge, 0, 1000)
	return b
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if math.IsNaN(val) {
		return min
	}
	return math.Max(min, math.Min(max, val))
}

// clamp restricts an int to [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
