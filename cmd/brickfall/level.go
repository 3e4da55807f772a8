package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

var (
	flagLayoutLevel  int
	flagLayoutWidth  float64
	flagLayoutHeight float64
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print a generated level layout",
	Long: `Generate the brick field for a level and print it as ASCII.
Digits are brick strength, dots are empty slots.

Examples:
  brickfall level
  brickfall level --level 20 --seed 7
  brickfall level --width 1024 --height 768`,
	Run: runLevel,
}

func init() {
	levelCmd.Flags().IntVar(&flagLayoutLevel, "level", 1, "Level number")
	levelCmd.Flags().Float64Var(&flagLayoutWidth, "width", 640, "Viewport width in pixels")
	levelCmd.Flags().Float64Var(&flagLayoutHeight, "height", 480, "Viewport height in pixels")
}

func runLevel(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bc := config.Default().Brick
	lay := breakout.Plan(flagLayoutLevel, flagLayoutWidth, flagLayoutHeight, bc)
	bricks := breakout.Generate(flagLayoutLevel, flagLayoutWidth, flagLayoutHeight, bc, breakout.NewSimpleRNG(seed))

	fmt.Print(renderLayout(lay, bricks, bc))
	fmt.Printf("\nlevel %d  pattern %s  %dx%d  max hp %d  bricks %d  seed %d\n",
		flagLayoutLevel, lay.Pattern.Name, lay.Cols, lay.UsableRows, lay.MaxHP, len(bricks), seed)
}

// renderLayout draws one character per grid slot.
func renderLayout(lay breakout.Layout, bricks []*breakout.Brick, bc config.BrickConfig) string {
	grid := make([][]byte, lay.UsableRows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", lay.Cols))
	}

	for _, b := range bricks {
		c := int(math.Round((b.X - lay.OffX) / (bc.Width + bc.Pad)))
		r := int(math.Round((b.Y - lay.OffY) / (bc.Height + bc.Pad)))
		if r < 0 || r >= len(grid) || c < 0 || c >= lay.Cols {
			continue
		}
		grid[r][c] = byte('0' + min(b.HP, 9))
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
