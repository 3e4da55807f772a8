package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/audio"
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLives      int
	flagLevel      int
	flagDrop       float64
	flagFall       float64
	flagMute       bool
	flagSettings   bool
	flagLogFile    string
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or pick one from a menu.

Controls:
  A/D, Left/Right  - Move paddle (mouse drag works too)
  Space/Enter      - Start, restart after game over
  P/Esc            - Pause
  O                - Settings
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ramp, more lives
  normal - Config as loaded
  hard   - Faster ramp, fewer lives
  fixed  - No speed ramp

Examples:
  brickfall play
  brickfall play breakout --difficulty hard
  brickfall play breakout_classic --lives 5 --level 3
  brickfall play --config ./my-breakout.yaml
  brickfall play breakout --settings
  brickfall play --verbose --log-file brickfall.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "Starting lives (0 = from config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from config)")
	playCmd.Flags().Float64Var(&flagDrop, "drop", -1, "Item drop chance 0..1 (negative = from config)")
	playCmd.Flags().Float64Var(&flagFall, "fall", 0, "Item fall speed in px/s (0 = from config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume 0..1")
	playCmd.Flags().BoolVar(&flagSettings, "settings", false, "Print the effective configuration and exit")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs here while the game is on screen (default: discard)")
}

func runPlay(_ *cobra.Command, args []string) {
	if err := configureBreakout(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := breakout.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickfall list' to see available games.")
		os.Exit(1)
	}

	if flagSettings {
		if err := printSettings(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := runtimeConfig()

	player := audio.NewPlayer(flagMute)
	player.SetVolume(flagVolume)
	if !flagMute {
		if err := audio.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
			player.SetMuted(true)
		}
		defer audio.Close()
	}

	if len(args) == 1 {
		if err := playOnce(gameID, cfg, player); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Menu loop
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if res.Quit || res.GameID == "" {
			return
		}
		cfg = res.Config
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := playOnce(res.GameID, cfg, player); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}

// configureBreakout hands the command line settings to the breakout package.
func configureBreakout() error {
	if _, err := config.Load(flagConfig); err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using built-in config", "err", err)
	}

	breakout.SetConfigPath(flagConfig)
	if err := breakout.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	o := config.Overrides{
		Lives:      flagLives,
		StartLevel: flagLevel,
		FallSpeed:  flagFall,
	}
	if flagDrop >= 0 {
		o.DropChance = &flagDrop
	}
	breakout.SetOverrides(o)
	return nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func playOnce(gameID string, cfg core.RuntimeConfig, player *audio.Player) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if bg, ok := game.(*breakout.Game); ok {
		bg.SetAudio(player)
		bg.SetStatus(breakout.StatusFunc(func(s breakout.Status) {
			logger.Debug("status", "game", gameID, "level", s.Level, "lives", s.Lives, "balls", s.Balls)
		}))
	}
	return whileFullscreen(flagLogFile, func() error {
		return tui.Run(game, cfg)
	})
}

// whileFullscreen runs fn with the logger moved off stderr, which the
// alt screen owns. Logs go to path, or nowhere when path is empty.
func whileFullscreen(path string, fn func() error) error {
	var out io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger.SetOutput(out)
	defer logger.SetOutput(os.Stderr)
	return fn()
}

// printSettings writes the configuration a round would start with.
func printSettings(gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game.Reset(runtimeConfig())

	c, ok := game.(tui.Configurable)
	if !ok {
		return fmt.Errorf("game %q has no settings", gameID)
	}
	data, err := config.Marshal(c.Settings())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
