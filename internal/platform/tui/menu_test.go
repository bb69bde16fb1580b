package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lines/internal/core"
	_ "github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuListsGamesWithBest(t *testing.T) {
	store := openStore(t)
	store.SaveRun("lines_mini", "", 750, 20)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, expected 2", len(m.items))
	}
	if m.items[0].GameID != "lines" || m.items[1].GameID != "lines_mini" {
		t.Errorf("items = %+v", m.items)
	}
	if m.items[1].Best != 750 {
		t.Errorf("lines_mini best = %d, expected 750", m.items[1].Best)
	}
	if !strings.Contains(m.View(), "best 750") {
		t.Error("View() does not show the best score")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Fatal("select did not exit the menu")
	}
	if res := m.Result(); res.GameID != "lines_mini" || res.Quit {
		t.Errorf("Result() = %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := next.(MenuModel).Result(); !res.WantsScoreboard {
		t.Errorf("tab Result() = %+v", res)
	}

	next, _ = m.Update(runeKey("q"))
	if res := next.(MenuModel).Result(); !res.Quit {
		t.Errorf("q Result() = %+v", res)
	}
}

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store := openStore(t)
	store.SaveRun("lines", "", 300, 12)
	store.SaveRun("lines", "", 900, 40)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %+v", m.scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Lines", "Runs: 2", "Best: 900", "Avg: 600"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 0 || !strings.Contains(m.View(), "No runs yet") {
		t.Error("lines_mini should have no runs")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 0 {
		t.Errorf("gameCursor = %d after prev, expected 0", m.gameCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
