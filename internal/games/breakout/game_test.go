package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%100 == 0:
			inputSequence[i].Set(core.ActionStart)
		case i%5 < 3:
			inputSequence[i].Set(core.ActionRight)
		default:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Frame {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Session().Frame()
	}

	f1, f2 := run(), run()
	if f1.Level != f2.Level || f1.Lives != f2.Lives || f1.State != f2.State {
		t.Fatalf("Determinism failed: %v/%d/%d vs %v/%d/%d", f1.State, f1.Level, f1.Lives, f2.State, f2.Level, f2.Lives)
	}
	if f1.Paddle.X != f2.Paddle.X {
		t.Errorf("Determinism failed: paddle positions differ")
	}
	if len(f1.Balls) != len(f2.Balls) {
		t.Fatalf("Determinism failed: ball counts differ")
	}
	for i := range f1.Balls {
		if f1.Balls[i] != f2.Balls[i] {
			t.Errorf("Determinism failed: ball %d differs", i)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	state := g.State()
	if state.GameOver || state.Paused {
		t.Error("Fresh game should be neither over nor paused")
	}
	if state.Phase != "ready" || state.Balls != 1 || state.Level != 1 {
		t.Errorf("Unexpected state after reset: %+v", state)
	}

	w, h := g.Session().Size()
	if w != 80*CellW || h != (24-HUDRows)*CellH {
		t.Errorf("World size = %vx%v", w, h)
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "breakout" || NewClassic().ID() != "breakout_classic" {
		t.Error("Unexpected game IDs")
	}
	for _, id := range []string{"breakout", "breakout_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}

	g := NewClassic()
	g.Reset(testRuntime())
	if g.Settings().SpeedRamp.Policy != config.RampContinuous || g.Settings().Bounce.Policy != config.BounceNudge {
		t.Error("Classic variant should use the continuous ramp and nudge bounce")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}

	before := g.Session().Frame().Balls[0]
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Frame().Balls[0] != before {
		t.Error("Ball moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Expected resumed")
	}
}

func TestGamePointerMovesPaddle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	x0 := g.Session().Frame().Paddle.X

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	in.PointerDX = 2
	g.Step(in)

	x1 := g.Session().Frame().Paddle.X
	if math.Abs(x1-x0-2*CellW) > 1e-6 {
		t.Errorf("Paddle should move %d px, moved %v", 2*CellW, x1-x0)
	}
}

func TestGameApplySettings(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	drop := 0.5
	g.Apply(config.Overrides{Lives: 9, StartLevel: 4, DropChance: &drop, FallSpeed: 1000})

	st := g.State()
	if st.Lives != 9 || st.Level != 4 || st.Phase != "ready" {
		t.Errorf("Apply should restart with new settings, got %+v", st)
	}
	if g.Settings().Items.DropChance != 0.5 {
		t.Errorf("Drop chance = %v, want 0.5", g.Settings().Items.DropChance)
	}
	if g.Settings().Items.FallSpeed != 600 {
		t.Errorf("Fall speed should clamp to 600, got %v", g.Settings().Items.FallSpeed)
	}

	// A resize regenerates the round but keeps the panel settings.
	rt := testRuntime()
	rt.ScreenW += 10
	g.Reset(rt)
	if st := g.State(); st.Lives != 9 || st.Level != 4 {
		t.Errorf("Settings lost on resize, got %+v", st)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Lv 1") {
		t.Errorf("HUD missing level: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "SPACE") {
		t.Errorf("Ready hint missing: %q", screen.Row(23))
	}

	out := screen.String()
	for _, r := range []rune{PaddleChar, BallChar, BrickGlyphs[0]} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("Screen missing %c", r)
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small message")
	}

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Error("Too-small game should not end")
	}
}

func TestBrickGlyph(t *testing.T) {
	tests := []struct {
		ratio float64
		want  rune
	}{
		{1, '█'},
		{0.8, '▓'},
		{0.5, '▒'},
		{0.2, '░'},
	}
	for _, tt := range tests {
		if got := BrickGlyph(tt.ratio); got != tt.want {
			t.Errorf("BrickGlyph(%v) = %c, want %c", tt.ratio, got, tt.want)
		}
	}
}

func TestGameMinimumScreenHasBricks(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: MinScreenW, ScreenH: MinScreenH, TickRate: 60, Seed: 1})
	g.Apply(config.Overrides{StartLevel: 3})

	if n := g.Session().AliveBricks(); n == 0 {
		t.Fatal("Level 3 on the minimum screen should have bricks")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	g.Step(in)
	if st := g.State(); st.Level != 3 || st.Phase != "running" {
		t.Errorf("Level should not be skipped, got %+v", st)
	}
}
