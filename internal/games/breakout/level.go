package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// Palette holds the brick display colors.
var Palette = []string{"#6cc6ff", "#ff6b6b", "#ffd166", "#ffa94d", "#95e56b"}

// Pattern decides whether a brick occupies (row, col) of a rows x cols grid.
type Pattern struct {
	Name  string
	Place func(r, c, rows, cols int) bool
}

// Patterns is indexed by level mod len(Patterns).
var Patterns = []Pattern{
	{"solid", func(r, c, rows, cols int) bool { return true }},
	{"checker", func(r, c, rows, cols int) bool { return (r+c)%2 == 0 }},
	{"diagonal", func(r, c, rows, cols int) bool {
		if r%3 == 0 {
			return c%2 == 0
		}
		return c%2 == 1
	}},
	{"pyramid", func(r, c, rows, cols int) bool {
		mid := float64(cols-1) / 2
		span := math.Floor(float64(r) * float64(cols) / float64(rows))
		return float64(c) >= mid-span && float64(c) <= mid+span
	}},
	{"diamond", func(r, c, rows, cols int) bool {
		midR, midC := float64(rows-1)/2, float64(cols-1)/2
		return math.Abs(float64(r)-midR)+math.Abs(float64(c)-midC) <= float64(rows/2)
	}},
	{"hollow", func(r, c, rows, cols int) bool {
		return r == 0 || c == 0 || r == rows-1 || c == cols-1
	}},
	{"stripes", func(r, c, rows, cols int) bool { return r%2 == 0 }},
	{"ring", func(r, c, rows, cols int) bool {
		const thick = 2
		border := r < thick || c < thick || r >= rows-thick || c >= cols-thick
		inner := r >= thick*2 && c >= thick*2 && r < rows-thick*2 && c < cols-thick*2
		return border && !inner
	}},
}

// Layout is the deterministic part of a level: grid size, placement and pattern.
type Layout struct {
	Cols, Rows int     // Grid that fits the viewport
	UsableRows int     // Rows that may hold bricks; the last grid row stays empty, so 0 when Rows is 1
	OffX, OffY float64 // Top-left of the grid
	MaxHP      int
	Pattern    Pattern
}

// Plan computes the layout for a level in a width x height viewport.
func Plan(level int, width, height float64, bc config.BrickConfig) Layout {
	level = max(level, 1)
	stepX, stepY := bc.Width+bc.Pad, bc.Height+bc.Pad

	maxCols := max(1, int(math.Floor((width-bc.SideMargin*2+bc.Pad)/stepX)))
	maxRows := max(1, int(math.Floor((height-bc.BottomSafe-bc.TopOffset+bc.Pad)/stepY)))

	cols := min(core.Clamp(6+level/9, 7, 12), maxCols)
	rows := min(core.Clamp(3+level/7, 4, 12), maxRows)

	totalW := float64(cols)*bc.Width + float64(cols-1)*bc.Pad
	offX := math.Max(bc.SideMargin, math.Floor((width-totalW)/2))
	usable := rows - 1

	pattern := Patterns[level%len(Patterns)]
	if !pattern.placesAny(usable, cols) {
		pattern = Patterns[0]
	}

	return Layout{
		Cols:       cols,
		Rows:       rows,
		UsableRows: usable,
		OffX:       offX,
		OffY:       bc.TopOffset,
		MaxHP:      min(5, 1+level/12),
		Pattern:    pattern,
	}
}

// placesAny reports whether p puts at least one brick on a rows x cols grid.
func (p Pattern) placesAny(rows, cols int) bool {
	for r := range rows {
		for c := range cols {
			if p.Place(r, c, rows, cols) {
				return true
			}
		}
	}
	return false
}

// Generate builds the bricks for a level. The layout is a pure function of
// (level, viewport, geometry); only brick strength consumes the RNG.
func Generate(level int, width, height float64, bc config.BrickConfig, rng RNG) []*Brick {
	lay := Plan(level, width, height, bc)
	bias := math.Min(0.7, float64(level)/140)
	view := core.Box{W: width, H: height - bc.BottomSafe}

	bricks := make([]*Brick, 0, lay.UsableRows*lay.Cols)
	for r := range lay.UsableRows {
		for c := range lay.Cols {
			if !lay.Pattern.Place(r, c, lay.UsableRows, lay.Cols) {
				continue
			}

			hp := min(rollHP(rng.Float64(), bias), lay.MaxHP)
			x := lay.OffX + float64(c)*(bc.Width+bc.Pad)
			y := lay.OffY + float64(r)*(bc.Height+bc.Pad)

			b := NewBrick(x, y, bc.Width, bc.Height, hp)
			if !b.Box().Inside(view) {
				continue
			}
			b.ColorIndex = colorIndex(level, r, c, hp)
			b.Color = Palette[b.ColorIndex]
			bricks = append(bricks, b)
		}
	}
	return bricks
}

// rollHP maps a uniform roll to a strength; higher bias favors stronger bricks.
func rollHP(roll, bias float64) int {
	hp := 1
	if roll < 0.15+bias*0.20 {
		hp = 2
	}
	if roll < 0.06+bias*0.15 {
		hp = 3
	}
	if roll < 0.03+bias*0.10 {
		hp = 4
	}
	if roll < 0.015+bias*0.05 {
		hp = 5
	}
	return hp
}

func colorIndex(level, r, c, hp int) int {
	return (level + r + 2*c + hp) % len(Palette)
}

