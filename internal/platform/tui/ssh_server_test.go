package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewSessionModel(cfg, log.New(io.Discard))

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("Enter should start the selected game")
	}
	if id := m.gameModel.game.ID(); id != "breakout" {
		t.Errorf("Expected breakout, got %q", id)
	}

	// B is ignored while the round is running.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, runeKey('b'))
	if m.gameModel == nil {
		t.Fatal("B should not leave a running game")
	}

	m = sessionUpdate(t, m, runeKey('p'))
	m = sessionUpdate(t, m, TickMsg{})
	if !m.gameModel.gameState.Paused {
		t.Fatal("Expected the game to be paused")
	}

	m = sessionUpdate(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("B while paused should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("Menu should be fresh after returning")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), log.New(io.Discard))

	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("Q should quit the session")
	}
	if m.View() != "" {
		t.Error("Quitting session should render nothing")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), log.New(io.Discard))

	m = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("Session config not resized: %dx%d", m.config.ScreenW, m.config.ScreenH)
	}
}
