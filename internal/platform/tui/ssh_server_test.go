package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

func newTestSession(t *testing.T, made *[]config.DifficultyPreset) SessionModel {
	t.Helper()
	server := DefaultSSHServerConfig()
	server.GameID = "fake"
	server.NewGame = func(p config.DifficultyPreset, _ *log.Logger) registry.Game {
		*made = append(*made, p)
		return &fakeGame{overAfter: 1}
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(openTestStore(t), cfg, server, log.New(io.Discard))
}

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
	var made []config.DifficultyPreset
	m := newTestSession(t, &made)

	// Default menu selection is normal; move to easy and pick it
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if len(made) != 1 || made[0] != config.DifficultyEasy {
		t.Fatalf("games made = %v, want [easy]", made)
	}

	m = sessionUpdate(t, m, TickMsg(time.Now()))
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after leaving a finished game", m.screen)
	}
	if m.quitting {
		t.Error("going back must not end the session")
	}
	if m.menu.items[m.menu.cursor].Preset != config.DifficultyEasy {
		t.Error("menu should remember the last preset")
	}
}

func TestSessionScoreboard(t *testing.T) {
	var made []config.DifficultyPreset
	m := newTestSession(t, &made)

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("back from the scoreboard should show the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	var made []config.DifficultyPreset
	m := newTestSession(t, &made)

	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if next.(SessionModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestNewSSHServerNeedsFactory(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig()); err == nil {
		t.Error("NewSSHServer without a game factory should fail")
	}
}
