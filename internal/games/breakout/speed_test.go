package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
)

func TestTieredMultiplier(t *testing.T) {
	ramp := NewSpeedRamp(config.Default().SpeedRamp)

	tests := []struct {
		name    string
		cleared float64
		elapsed float64
		boost   float64
		want    float64
	}{
		{"start", 0, 0, 1, 1},
		{"quarter cleared", 0.25, 0, 1, 1.2},
		{"half cleared", 0.5, 0, 1, 1.4},
		{"half cleared two steps", 0.5, 30, 1, 1.4 * 1.16},
		{"time steps capped", 0.5, 1000, 1, 1.4 * 1.4},
		{"boost", 0, 0, 1.24, 1.24},
		{"clamped to max", 0.95, 1000, 2, 3.0},
		{"clamped to floor", 0, 0, 0.1, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ramp.Multiplier(tt.cleared, tt.elapsed, tt.boost)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Multiplier(%v, %v, %v) = %v, want %v", tt.cleared, tt.elapsed, tt.boost, got, tt.want)
			}
		})
	}
}

func TestContinuousMultiplier(t *testing.T) {
	ramp := NewSpeedRamp(config.Classic().Sanitize().SpeedRamp)

	got := ramp.Multiplier(0.5, 20, 1)
	want := 1 + 0.05*2 + 0.6*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	for _, cfg := range []config.Config{config.Default(), config.Classic()} {
		ramp := NewSpeedRamp(cfg.Sanitize().SpeedRamp)

		prevM, prevTier := 0.0, -1
		for cleared := 0.0; cleared <= 1.0; cleared += 0.01 {
			m := ramp.Multiplier(cleared, 0, 1)
			tier := ramp.Tier(cleared, 0)
			if m < prevM || tier < prevTier {
				t.Errorf("%s: not monotonic in cleared at %v", cfg.SpeedRamp.Policy, cleared)
			}
			prevM, prevTier = m, tier
		}

		prevM, prevTier = 0.0, -1
		for elapsed := 0.0; elapsed <= 200; elapsed += 0.5 {
			m := ramp.Multiplier(0.3, elapsed, 1)
			tier := ramp.Tier(0.3, elapsed)
			if m < prevM || tier < prevTier {
				t.Errorf("%s: not monotonic in time at %v", cfg.SpeedRamp.Policy, elapsed)
			}
			prevM, prevTier = m, tier
		}
	}
}

func TestTieredTier(t *testing.T) {
	ramp := NewSpeedRamp(config.Default().SpeedRamp)

	if got := ramp.Tier(0, 0); got != 0 {
		t.Errorf("Tier at start = %d, want 0", got)
	}
	if got := ramp.Tier(0.5, 30); got != 4 {
		t.Errorf("Tier(0.5, 30) = %d, want 4", got)
	}
	if got := ramp.Tier(1, 1e6); got != 9 {
		t.Errorf("Tier at max = %d, want 9", got)
	}
}

func TestMultiplierBadInputs(t *testing.T) {
	ramp := NewSpeedRamp(config.Default().SpeedRamp)

	if got := ramp.Multiplier(math.NaN(), -5, 1); got != 1 {
		t.Errorf("NaN cleared and negative time should give 1, got %v", got)
	}
	if got := ramp.Multiplier(2, 0, 1); got != 1.9 {
		t.Errorf("Cleared above 1 should clamp to the top tier, got %v", got)
	}
	if got := ramp.Multiplier(0, 0, math.NaN()); got != 0.6 {
		t.Errorf("NaN boost should fall to the floor, got %v", got)
	}
}
