package breakout

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
)

// scriptedRNG replays a fixed sequence of values.
type scriptedRNG struct {
	vals []float64
	i    int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestGenerateLevelOneFitsViewport(t *testing.T) {
	bc := config.Default().Brick
	bricks := Generate(1, 640, 480, bc, NewSimpleRNG(7))

	if len(bricks) == 0 {
		t.Fatal("Expected bricks on level 1")
	}

	lay := Plan(1, 640, 480, bc)
	if lay.Cols != 7 || lay.Rows != 4 || lay.UsableRows != 3 {
		t.Errorf("Unexpected grid: cols=%d rows=%d usable=%d", lay.Cols, lay.Rows, lay.UsableRows)
	}
	if lay.OffX != 72 {
		t.Errorf("Grid should be centered at x=72, got %v", lay.OffX)
	}

	lastRowY := lay.OffY + float64(lay.Rows-1)*(bc.Height+bc.Pad)
	for i, b := range bricks {
		if b.X < bc.SideMargin || b.X+b.W > 640-bc.SideMargin {
			t.Errorf("Brick %d outside side margins: x=%v w=%v", i, b.X, b.W)
		}
		if b.Y < bc.TopOffset || b.Y+b.H > 480-bc.BottomSafe {
			t.Errorf("Brick %d outside vertical margins: y=%v", i, b.Y)
		}
		if b.Y >= lastRowY {
			t.Errorf("Brick %d placed in reserved bottom row: y=%v", i, b.Y)
		}
		if !b.Alive || b.HP != 1 {
			t.Errorf("Level 1 brick %d should be alive with 1 HP, got alive=%v hp=%d", i, b.Alive, b.HP)
		}
	}

	// Checkerboard over 3x7: 4 + 3 + 4
	if len(bricks) != 11 {
		t.Errorf("Expected 11 bricks, got %d", len(bricks))
	}
}

func TestGenerateLayoutIsDeterministic(t *testing.T) {
	bc := config.Default().Brick

	for level := 1; level <= 40; level++ {
		a := Generate(level, 800, 600, bc, &scriptedRNG{vals: []float64{0.5}})
		b := Generate(level, 800, 600, bc, &scriptedRNG{vals: []float64{0.01, 0.9, 0.2}})

		if len(a) != len(b) {
			t.Fatalf("Level %d: brick count differs %d vs %d", level, len(a), len(b))
		}
		for i := range a {
			if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].W != b[i].W || a[i].H != b[i].H {
				t.Fatalf("Level %d brick %d: positions differ", level, i)
			}
		}
	}
}

func TestGenerateSameRNGSameLevel(t *testing.T) {
	bc := config.Default().Brick
	a := Generate(30, 640, 480, bc, NewSimpleRNG(99))
	b := Generate(30, 640, 480, bc, NewSimpleRNG(99))

	for i := range a {
		if *a[i] != *b[i] {
			t.Fatalf("Brick %d differs with identical seeds", i)
		}
	}
}

func TestGenerateHPCappedByLevel(t *testing.T) {
	bc := config.Default().Brick

	tests := []struct {
		level int
		maxHP int
	}{
		{1, 1},
		{12, 2},
		{24, 3},
		{48, 5},
		{99, 5},
	}

	for _, tt := range tests {
		// A zero roll asks for the strongest brick.
		bricks := Generate(tt.level, 640, 480, bc, &scriptedRNG{vals: []float64{0}})
		for _, b := range bricks {
			if b.HP != tt.maxHP {
				t.Errorf("Level %d: expected HP %d, got %d", tt.level, tt.maxHP, b.HP)
				break
			}
		}
	}
}

func TestRollHP(t *testing.T) {
	tests := []struct {
		roll float64
		bias float64
		want int
	}{
		{0.99, 0, 1},
		{0.10, 0, 2},
		{0.05, 0, 3},
		{0.02, 0, 4},
		{0.01, 0, 5},
		{0.20, 0, 1},
		{0.20, 0.7, 2},
		{0.40, 0.7, 1},
	}

	for _, tt := range tests {
		if got := rollHP(tt.roll, tt.bias); got != tt.want {
			t.Errorf("rollHP(%v, %v) = %d, want %d", tt.roll, tt.bias, got, tt.want)
		}
	}

	// Higher bias never lowers strength for the same roll.
	for roll := 0.0; roll < 1; roll += 0.01 {
		if rollHP(roll, 0.7) < rollHP(roll, 0) {
			t.Errorf("Bias lowered HP at roll %v", roll)
		}
	}
}

func TestPlanGrowsWithLevel(t *testing.T) {
	bc := config.Default().Brick
	prev := Plan(1, 1920, 1080, bc)
	for level := 2; level <= 99; level++ {
		lay := Plan(level, 1920, 1080, bc)
		if lay.Cols < prev.Cols || lay.Rows < prev.Rows {
			t.Errorf("Level %d grid shrank: %dx%d -> %dx%d", level, prev.Cols, prev.Rows, lay.Cols, lay.Rows)
		}
		if lay.Pattern.Name != Patterns[level%len(Patterns)].Name {
			t.Errorf("Level %d: wrong pattern %s", level, lay.Pattern.Name)
		}
		prev = lay
	}
}

func TestPlanTinyViewport(t *testing.T) {
	lay := Plan(5, 10, 10, config.Default().Brick)
	if lay.Cols != 1 || lay.Rows != 1 || lay.UsableRows != 0 {
		t.Errorf("Tiny viewport should give a 1x1 grid with no usable rows, got %dx%d (usable %d)", lay.Cols, lay.Rows, lay.UsableRows)
	}
	if bricks := Generate(5, 10, 10, config.Default().Brick, NewSimpleRNG(1)); len(bricks) != 0 {
		t.Errorf("Tiny viewport should hold no bricks, got %d", len(bricks))
	}
}

func TestGenerateSmallScreens(t *testing.T) {
	bc := config.Default().Brick
	stepY := bc.Height + bc.Pad

	for sw := MinScreenW; sw <= 200; sw += 4 {
		for sh := MinScreenH; sh <= 60; sh += 2 {
			w, h := WorldSize(sw, sh)
			for level := 1; level <= 16; level++ {
				lay := Plan(level, w, h, bc)
				bricks := Generate(level, w, h, bc, NewSimpleRNG(int64(level)))
				if len(bricks) == 0 {
					t.Fatalf("%dx%d level %d: no bricks (pattern %s, %dx%d)", sw, sh, level, lay.Pattern.Name, lay.Cols, lay.UsableRows)
				}
				bottomRow := lay.OffY + float64(lay.Rows-1)*stepY
				for _, b := range bricks {
					if b.Y >= bottomRow-1e-9 {
						t.Fatalf("%dx%d level %d: brick in the bottom grid row at y=%v", sw, sh, level, b.Y)
					}
					if b.X+b.W > w || b.Y+b.H > h {
						t.Fatalf("%dx%d level %d: brick outside viewport at (%v, %v)", sw, sh, level, b.X, b.Y)
					}
				}
			}
		}
	}
}

func TestPatternFallsBackToSolid(t *testing.T) {
	bc := config.Default().Brick
	w, h := WorldSize(MinScreenW, MinScreenH)

	// Level 3 is the pyramid; one usable row with an even column count leaves it empty.
	lay := Plan(3, w, h, bc)
	if lay.UsableRows != 1 || lay.Cols%2 != 0 {
		t.Fatalf("Unexpected layout %dx%d", lay.Cols, lay.UsableRows)
	}
	if lay.Pattern.Name != "solid" {
		t.Errorf("Expected solid fallback, got %s", lay.Pattern.Name)
	}
}

func TestPatternsPlaceSomething(t *testing.T) {
	for _, p := range Patterns {
		placed := 0
		for r := range 5 {
			for c := range 9 {
				if p.Place(r, c, 5, 9) {
					placed++
				}
			}
		}
		if placed == 0 {
			t.Errorf("Pattern %s places no bricks on a 5x9 grid", p.Name)
		}
	}
}

func TestBrickColorFromPalette(t *testing.T) {
	bricks := Generate(3, 640, 480, config.Default().Brick, NewSimpleRNG(1))
	for _, b := range bricks {
		if b.Color != Palette[b.ColorIndex] {
			t.Errorf("Brick color %s does not match palette index %d", b.Color, b.ColorIndex)
		}
	}
}
