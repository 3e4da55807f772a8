package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
)

// DefaultHoldDuration is how long a direction stays held after its last
// key repeat. It bridges the delay before the terminal starts repeating.
const DefaultHoldDuration = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "o":
		return core.ActionSettings, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b":
		return MenuActionBack
	}
	return MenuActionNone
}

// HoldTracker turns repeated key presses into a held state, since
// terminals report presses but not releases. A direction counts as held
// until holdFor passes without another press.
type HoldTracker struct {
	holdFor time.Duration
	last    map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(holdFor time.Duration) *HoldTracker {
	return &HoldTracker{holdFor: holdFor, last: make(map[core.Action]time.Time)}
}

// Press records a press at now. Pressing a direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.holdFor {
		delete(h.last, a)
		return false
	}
	return true
}

// ReleaseAll forgets every held action.
func (h *HoldTracker) ReleaseAll() {
	clear(h.last)
}

// PointerTracker accumulates horizontal mouse drag in cells between ticks.
type PointerTracker struct {
	x        int
	dragging bool
	dx       int
}

// Handle feeds a mouse message into the tracker.
func (p *PointerTracker) Handle(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		p.x = msg.X
		p.dragging = true
	case tea.MouseActionMotion:
		if p.dragging {
			p.dx += msg.X - p.x
		}
		p.x = msg.X
	case tea.MouseActionRelease:
		p.dragging = false
	}
}

// Take returns the motion since the last call and resets it.
func (p *PointerTracker) Take() int {
	dx := p.dx
	p.dx = 0
	return dx
}
