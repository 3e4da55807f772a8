package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
)

// World pixels per terminal cell, and rows reserved for the HUD.
const (
	CellW   = 8
	CellH   = 16
	HUDRows = 2
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderHoriz = '─'
)

// Brick glyphs from full strength down to the last hit point.
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

// Minimum terminal size in cells.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Variant selects the tuning a Game starts from.
type Variant int

const (
	VariantStandard Variant = iota // Tiered ramp, angle-shaped bounce
	VariantClassic                 // Continuous ramp, nudge bounce
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// overrides stores the settings given on the command line
var overrides config.Overrides

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetOverrides sets the lives, level, drop and fall values applied on Reset.
func SetOverrides(o config.Overrides) {
	overrides = o
}

// Game adapts a Session to the registry.Game interface: it maps input
// frames to Input, scales the pixel world to terminal cells and draws the
// Frame onto a core.Screen.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.Config
	applied config.Overrides // From the settings panel; survives resize
	loadErr error

	session *Session
	paused  bool

	audio  AudioSink
	status StatusSink

	screenTooSmall bool
}

// New creates a Breakout game with the standard tuning.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a Breakout game with the classic tuning.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// Registry IDs.
const (
	ID        = "breakout"
	ClassicID = "breakout_classic"
)

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return ClassicID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Breakout (Classic)"
	}
	return "Breakout"
}

// SetAudio sets the cue sink. Takes effect on the next Reset.
func (g *Game) SetAudio(a AudioSink) {
	g.audio = a
}

// SetStatus sets the status sink. Takes effect on the next Reset.
func (g *Game) SetStatus(s StatusSink) {
	g.status = s
}

// LoadError returns the error from the last config load, if any.
// The game still runs on the built-in defaults in that case.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Reset loads configuration and starts a new round sized to the screen.
// Called on start and on every terminal resize.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	cfg, err := config.Load(configPath)
	g.loadErr = err
	if g.variant == VariantClassic {
		cfg = config.AsClassic(cfg)
	}
	if difficultyPreset != "" {
		cfg = config.ApplyPreset(cfg, difficultyPreset)
	}
	g.cfg = cfg.WithOverrides(overrides).WithOverrides(g.applied)

	w, h := WorldSize(runtime.ScreenW, runtime.ScreenH)
	var opts []Option
	if g.audio != nil {
		opts = append(opts, WithAudio(g.audio))
	}
	if g.status != nil {
		opts = append(opts, WithStatus(g.status))
	}
	g.session = NewSession(g.cfg, w, h, NewSimpleRNG(runtime.Seed), opts...)
	if len(g.session.bricks) == 0 {
		g.screenTooSmall = true
	}
}

// WorldSize converts a terminal size in cells to the pixel viewport.
func WorldSize(screenW, screenH int) (float64, float64) {
	return float64(max(screenW, 1) * CellW), float64(max(screenH-HUDRows, 1) * CellH)
}

// Settings returns the configuration the settings panel edits.
func (g *Game) Settings() config.Config {
	return g.cfg
}

// Apply rebuilds the configuration with o and restarts the round.
func (g *Game) Apply(o config.Overrides) {
	g.applied = o
	g.cfg = g.cfg.WithOverrides(o)
	g.paused = false
	if g.session != nil {
		g.session.Apply(g.cfg)
	}
}

// Session returns the running simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.State() == StateRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()
	g.session.Step(Input{
		MoveLeft:     in.Has(core.ActionLeft),
		MoveRight:    in.Has(core.ActionRight),
		PointerVX:    float64(in.PointerDX*CellW) / dt,
		StartPressed: in.Has(core.ActionStart),
	}, dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.Status()
	return core.GameState{
		Phase:    g.session.State().String(),
		Level:    st.Level,
		Lives:    st.Lives,
		Balls:    st.Balls,
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.session == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	f := g.session.Frame()
	renderHUD(dst, f)
	renderBricks(dst, f)
	renderItems(dst, f)
	renderPaddle(dst, f)
	renderBalls(dst, f)
	g.renderOverlay(dst, f)
}

// cellX and cellY map world pixels to screen cells.
func cellX(x float64) int { return int(math.Floor(x / CellW)) }
func cellY(y float64) int { return HUDRows + int(math.Floor(y/CellH)) }

func renderHUD(dst *core.Screen, f Frame) {
	left := fmt.Sprintf("Lv %d  ♥ %d/%d  ● %d", f.Level, f.Lives, f.MaxLives, len(f.Balls))
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf("x%.2f", f.Multiplier)
	if f.PassRemaining > 0 {
		right = fmt.Sprintf("BREAK %.1fs  %s", f.PassRemaining, right)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)

	for x := range dst.Width() {
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}
}

// BrickGlyph picks a glyph that thins out as the brick loses strength.
func BrickGlyph(hpRatio float64) rune {
	switch {
	case hpRatio >= 1:
		return BrickGlyphs[0]
	case hpRatio >= 0.75:
		return BrickGlyphs[1]
	case hpRatio >= 0.5:
		return BrickGlyphs[2]
	default:
		return BrickGlyphs[3]
	}
}

func renderBricks(dst *core.Screen, f Frame) {
	for _, br := range f.Bricks {
		x0 := cellX(br.X)
		w := max(1, int(math.Round(br.W/CellW)))
		r := core.NewRect(x0, cellY(br.Y), w, 1)
		dst.FillRect(r, BrickGlyph(br.HPRatio), core.Color(br.Color))
	}
}

func renderItems(dst *core.Screen, f Frame) {
	for _, it := range f.Items {
		dst.SetColored(cellX(it.X), cellY(it.Y), it.Type.Glyph(), core.ColorBrightWhite)
	}
}

func renderPaddle(dst *core.Screen, f Frame) {
	p := f.Paddle
	x0 := cellX(p.X)
	x1 := max(x0, cellX(p.X+p.W)-1)
	y := cellY(p.Y)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightWhite)
	}
}

func renderBalls(dst *core.Screen, f Frame) {
	for _, b := range f.Balls {
		c := core.ColorWhite
		if b.PassThrough {
			c = core.ColorBrightMagenta
		}
		dst.SetColored(cellX(b.X), cellY(b.Y), BallChar, c)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, f Frame) {
	switch {
	case f.State == StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Level %d  |  Press SPACE to restart", f.Level))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case f.State == StateReady:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to start  |  O settings  |  Q quit")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	dst.DrawText(r.X+(boxW-len([]rune(title)))/2, r.Y+1, title)
	dst.DrawText(r.X+(boxW-len([]rune(subtitle)))/2, r.Y+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
}
