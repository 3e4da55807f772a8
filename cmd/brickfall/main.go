// brickfall is a terminal Breakout with multi-hit bricks, falling items
// and a speed ramp.
//
// Usage:
//
//	brickfall list            - List available variants
//	brickfall play [game]     - Play a variant (menu if omitted)
//	brickfall serve           - Start SSH server for remote play
//	brickfall level           - Print a generated level layout
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game variants
	_ "github.com/vovakirdan/brickfall/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "brickfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - Breakout in your terminal",
	Long: `Brickfall is a terminal Breakout with multi-hit bricks, falling
power-ups and a ball speed that grows as you clear levels.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  level    - Print a generated level layout

Examples:
  brickfall list
  brickfall play
  brickfall play breakout_classic --lives 5
  brickfall serve --ssh :2222
  brickfall level --level 12`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelCmd)
}
