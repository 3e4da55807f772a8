package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	held       *HoldTracker
	pointer    *PointerTracker
	settings   *SettingsForm // Non-nil while the settings panel is open
	now        func() time.Time
	allowBack  bool // Whether B returns to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		held:       NewHoldTracker(DefaultHoldDuration),
		pointer:    &PointerTracker{},
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}

	if m.settings != nil {
		return m.updateSettings(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.pointer.Handle(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.allowBack && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.now())
	case core.ActionSettings:
		if c, ok := m.game.(Configurable); ok {
			m.settings = NewSettingsForm(c.Settings())
			m.held.ReleaseAll()
			return m, m.settings.Init()
		}
	default:
		m.inputFrame.Set(action)
	}

	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateSettings routes input to the settings panel and applies it on close.
func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	cmd := m.settings.Update(msg)
	if m.settings.Done() {
		if m.settings.Applied() {
			if c, ok := m.game.(Configurable); ok {
				c.Apply(m.settings.Result())
				m.gameState = m.game.State()
			}
		}
		m.settings = nil
	}
	return m, cmd
}

// handleResize regenerates the round for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick builds the input frame and advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.settings != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	now := m.now()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if m.held.Held(a, now) {
			m.inputFrame.Set(a)
		}
	}
	m.inputFrame.PointerDX = m.pointer.Take()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.settings != nil {
		return m.settings.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
