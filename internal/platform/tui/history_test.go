package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/storage"
)

func openHistoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(openHistoryStore(t), 100, 30)

	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty history view:\n%s", m.View())
	}
}

func TestHistoryModelTabs(t *testing.T) {
	store := openHistoryStore(t)
	store.SaveRun(storage.Run{Frontend: FrontendID, Width: 10, Height: 10, Generations: 12, StopReason: "quit", FinalDelay: 200 * time.Millisecond})
	store.SaveRun(storage.Run{Frontend: "other", Width: 10, Height: 10, Generations: 3, StopReason: "stable"})

	m := NewHistoryModel(store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("All tab shows %d runs, expected 2", len(m.runs))
	}
	if m.stats == nil || m.stats.Runs != 2 {
		t.Errorf("stats = %+v", m.stats)
	}

	// Tabs after "All" come from the frontend registry.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.tabs[m.cursor].ID != FrontendID {
		t.Fatalf("second tab = %q, expected %q", m.tabs[m.cursor].ID, FrontendID)
	}
	if len(m.runs) != 1 || m.runs[0].Generations != 12 {
		t.Errorf("tea tab runs = %+v", m.runs)
	}

	// Wrapping back past "All".
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.cursor != len(m.tabs)-1 {
		t.Errorf("cursor = %d, expected last tab %d", m.cursor, len(m.tabs)-1)
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}
