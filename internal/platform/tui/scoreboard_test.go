package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{65*time.Second + 900*time.Millisecond, "1:05"},
		{12 * time.Minute, "12:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func seedStore(t *testing.T) *storage.Store {
	t.Helper()
	store := openTestStore(t)
	for _, sc := range []int{300, 100} {
		if _, err := store.SaveScore("minesweeper", sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	for _, won := range []bool{true, false} {
		if _, err := store.SaveResult(storage.GameResult{
			GameID:   "minesweeper",
			Preset:   "easy",
			Width:    9,
			Height:   9,
			Mines:    10,
			Won:      won,
			Duration: 30 * time.Second,
		}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardViews(t *testing.T) {
	store := seedStore(t)
	m := NewScoreboardModel(store, "minesweeper", 100, 30)

	if m.view != viewHighScores {
		t.Fatalf("initial view = %v", m.view)
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "300" {
		t.Errorf("score rows = %v", rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent {
		t.Fatalf("tab should switch to recent games, got %v", m.view)
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d result rows, want 2", len(rows))
	}
	if rows[0][2] != "9x9/10" || rows[0][3] != "0:30" {
		t.Errorf("result row = %v", rows[0])
	}

	// Wraps back around
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).view != viewHighScores {
		t.Error("shift+tab should return to high scores")
	}
}

func TestScoreboardStats(t *testing.T) {
	store := seedStore(t)
	m := NewScoreboardModel(store, "minesweeper", 100, 30)

	stats := m.renderStats()
	for _, want := range []string{"Games      2", "Wins       1", "Win rate   50%", "Best time  0:30", "High score 300"} {
		if !strings.Contains(stats, want) {
			t.Errorf("stats missing %q:\n%s", want, stats)
		}
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("wide view should show the title")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "minesweeper", 60, 20)

	if m.showSidebar {
		t.Error("narrow terminals should not show the sidebar")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestMenuListsPresets(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewMenuModel(nil, cfg, config.DefaultMinesweeperConfig(), config.DifficultyHard, "minesweeper")

	if len(m.items) != len(config.PresetOrder) {
		t.Fatalf("got %d items, want %d", len(m.items), len(config.PresetOrder))
	}
	if m.items[m.cursor].Preset != config.DifficultyHard {
		t.Errorf("cursor on %s, want hard", m.items[m.cursor].Preset)
	}
	if !strings.Contains(m.View(), "30x16, 99 mines") {
		t.Error("menu should show board sizes")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.Preset != config.DifficultyNormal {
		t.Errorf("Selected() = %+v, want normal", sel)
	}
}

func TestMenuScoreboardRequest(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DefaultMinesweeperConfig(), config.DifficultyNormal, "minesweeper")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}
	if cmd == nil {
		t.Error("leaving the menu should quit its program")
	}
}
