package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 20, H: 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 30, 25, true},
		{"outside left", 9.99, 15, false},
		{"outside right", 30.01, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 26, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoxInside(t *testing.T) {
	outer := Box{X: 0, Y: 0, W: 100, H: 50}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"fully inside", Box{X: 10, Y: 10, W: 20, H: 20}, true},
		{"touching edges", Box{X: 0, Y: 0, W: 100, H: 50}, true},
		{"overflowing right", Box{X: 90, Y: 10, W: 20, H: 5}, false},
		{"above top", Box{X: 10, Y: -1, W: 5, H: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Inside(outer); got != tc.expected {
				t.Errorf("Inside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside stays", 4, 6, 4, 6},
		{"left of box", -5, 5, 0, 5},
		{"below right corner", 20, 30, 10, 10},
		{"above", 3, -2, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gx, gy := b.ClosestPoint(tc.x, tc.y)
			if gx != tc.wantX || gy != tc.wantY {
				t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)", tc.x, tc.y, gx, gy, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestBoxCenter(t *testing.T) {
	cx, cy := Box{X: 5, Y: 10, W: 20, H: 15}.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSignOrPositive(t *testing.T) {
	if SignOrPositive(-0.5) != -1 {
		t.Error("SignOrPositive(-0.5) should be -1")
	}
	if SignOrPositive(0) != 1 {
		t.Error("SignOrPositive(0) should be 1")
	}
	if SignOrPositive(3) != 1 {
		t.Error("SignOrPositive(3) should be 1")
	}
}

func TestDeg2Rad(t *testing.T) {
	if math.Abs(Deg2Rad(180)-(math.Pi)) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v, expected pi", Deg2Rad(180))
	}
	if math.Abs(Deg2Rad(-90)-(-math.Pi/2)) > 1e-12 {
		t.Errorf("Deg2Rad(-90) = %v, expected -pi/2", Deg2Rad(-90))
	}
}
