package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tentacles/internal/core"
	"github.com/vovakirdan/tui-tentacles/internal/registry"
)

func newTestMenu() MenuModel {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []registry.GameInfo{
		{ID: "tentacles", Title: "Tentacles"},
		{ID: "tentacles_endless", Title: "Tentacles (Endless)"},
	}
	return m
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return nm, cmd
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("select should quit the menu")
	}
	if m.Selected() == nil || m.Selected().ID != "tentacles_endless" {
		t.Errorf("selected = %+v, want tentacles_endless", m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, runeKey("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	for i := 0; i < 5; i++ {
		m, _ = menuUpdate(t, m, runeKey("j"))
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestMenuEmptyCursor(t *testing.T) {
	m := newTestMenu()
	m.items = nil

	m, _ = menuUpdate(t, m, runeKey("j"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestMenuQuit(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, runeKey("q"))
	if m.Selected() != nil {
		t.Error("quit should not select")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuViewListsModes(t *testing.T) {
	m := newTestMenu()

	view := m.View()
	for _, title := range []string{"Tentacles", "Tentacles (Endless)"} {
		if !strings.Contains(view, title) {
			t.Errorf("view missing %q", title)
		}
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
