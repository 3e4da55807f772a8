package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickfall/internal/config"
)

// Configurable is implemented by games whose settings can be changed
// from the settings panel. Apply restarts the round.
type Configurable interface {
	Settings() config.Config
	Apply(o config.Overrides)
}

// SettingsKeyMap defines the key bindings for the settings panel.
type SettingsKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Apply, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply & restart"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Settings fields, in display order.
const (
	fieldLives = iota
	fieldLevel
	fieldDrop
	fieldFall
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldLives: "Lives",
	fieldLevel: "Start level",
	fieldDrop:  "Drop chance %",
	fieldFall:  "Item fall speed",
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle      = lipgloss.NewStyle().Width(17)
	focusLabelStyle = labelStyle.Foreground(lipgloss.Color("14"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SettingsForm edits lives, start level, drop chance and fall speed.
type SettingsForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	keys    SettingsKeyMap
	help    help.Model
	err     error
	done    bool
	applied bool
	result  config.Overrides
}

// NewSettingsForm creates a form prefilled from cfg.
func NewSettingsForm(cfg config.Config) *SettingsForm {
	f := &SettingsForm{
		keys: DefaultSettingsKeyMap(),
		help: help.New(),
	}

	values := [fieldCount]string{
		fieldLives: strconv.Itoa(cfg.Gameplay.Lives),
		fieldLevel: strconv.Itoa(cfg.Gameplay.StartLevel),
		fieldDrop:  strconv.FormatFloat(cfg.Items.DropChance*100, 'f', -1, 64),
		fieldFall:  strconv.FormatFloat(cfg.Items.FallSpeed, 'f', -1, 64),
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 6
		ti.Width = 8
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

// Init starts the cursor blink.
func (f *SettingsForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message. Key messages that do not navigate go to the
// focused field.
func (f *SettingsForm) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Cancel):
			f.done = true
			return nil
		case key.Matches(km, f.keys.Apply):
			o, err := f.Overrides()
			if err != nil {
				f.err = err
				return nil
			}
			f.result = o
			f.done, f.applied = true, true
			return nil
		case key.Matches(km, f.keys.Next):
			return f.setFocus((f.focus + 1) % fieldCount)
		case key.Matches(km, f.keys.Prev):
			return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *SettingsForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Overrides parses the fields. Range limits are applied later by
// config sanitization; only malformed numbers are errors.
func (f *SettingsForm) Overrides() (config.Overrides, error) {
	var o config.Overrides

	lives, err := parseInt(f.inputs[fieldLives].Value(), fieldLabels[fieldLives])
	if err != nil {
		return o, err
	}
	level, err := parseInt(f.inputs[fieldLevel].Value(), fieldLabels[fieldLevel])
	if err != nil {
		return o, err
	}
	drop, err := parseFloat(f.inputs[fieldDrop].Value(), fieldLabels[fieldDrop])
	if err != nil {
		return o, err
	}
	fall, err := parseFloat(f.inputs[fieldFall].Value(), fieldLabels[fieldFall])
	if err != nil {
		return o, err
	}

	chance := drop / 100
	o.Lives = max(lives, 1)
	o.StartLevel = max(level, 1)
	o.DropChance = &chance
	o.FallSpeed = fall
	return o, nil
}

func parseInt(s, label string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: not a whole number", label)
	}
	return n, nil
}

func parseFloat(s, label string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number", label)
	}
	return v, nil
}

// Done reports whether the form was closed.
func (f *SettingsForm) Done() bool { return f.done }

// Applied reports whether the form was closed with valid values.
func (f *SettingsForm) Applied() bool { return f.applied }

// Result returns the parsed values after Applied.
func (f *SettingsForm) Result() config.Overrides { return f.result }

// View renders the panel centered in a width x height area.
func (f *SettingsForm) View(width, height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		style := labelStyle
		if i == f.focus {
			style = focusLabelStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.help.View(f.keys))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}
