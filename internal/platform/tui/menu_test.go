package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
	"github.com/vovakirdan/tui-munchkin/internal/storage"
)

func init() {
	registry.Register("menu_test_game", func() registry.Game { return &fakeGame{} })
}

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func findItem(t *testing.T, m MenuModel, id string) (int, MenuItem) {
	t.Helper()
	for i, item := range m.items {
		if item.GameID == id {
			return i, item
		}
	}
	t.Fatalf("%s missing from menu", id)
	return 0, MenuItem{}
}

func TestMenuShowsStoredScores(t *testing.T) {
	store := openStore(t)
	store.SaveHighScore("menu_test_game", 64)
	store.RecordGame(storage.GameRecord{GameID: "menu_test_game", Score: 64, Mazes: 3})
	store.RecordGame(storage.GameRecord{GameID: "menu_test_game", Score: 10, Mazes: 0})

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	_, item := findItem(t, m, "menu_test_game")
	if item.HighScore != 64 || item.Played != 2 {
		t.Errorf("item = %+v, expected high 64 and 2 played", item)
	}
	if !strings.Contains(m.View(), "played   2") {
		t.Error("view should show the game count")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	idx, _ := findItem(t, m, "menu_test_game")
	for i := 0; i < idx; i++ {
		m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().GameID != "menu_test_game" {
		t.Errorf("Selected() = %v, expected menu_test_game", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuKey(NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("esc on the title screen should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
