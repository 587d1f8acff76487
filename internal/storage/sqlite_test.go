package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(frontend string, generations int, reason string) Run {
	return Run{
		Frontend:          frontend,
		Width:             80,
		Height:            25,
		Generations:       generations,
		InitialPopulation: 40,
		FinalPopulation:   12,
		FinalDelay:        150 * time.Millisecond,
		StopReason:        reason,
		Duration:          3500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.life/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".life", "history.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleRun("tea", 120, "quit"))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}

	want := sampleRun("tea", 120, "quit")
	if got.Frontend != want.Frontend || got.Width != want.Width || got.Height != want.Height {
		t.Errorf("run = %+v", got)
	}
	if got.Generations != 120 || got.InitialPopulation != 40 || got.FinalPopulation != 12 {
		t.Errorf("counts = %+v", got)
	}
	if got.FinalDelay != want.FinalDelay || got.Duration != want.Duration {
		t.Errorf("durations: delay %v, duration %v", got.FinalDelay, got.Duration)
	}
	if got.StopReason != "quit" {
		t.Errorf("StopReason = %q", got.StopReason)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreSaveKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	r := sampleRun("tcell", 5, "stable")
	r.ID = "fixed-id"
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(r); err == nil {
		t.Error("duplicate id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(sampleRun("tea", (i+1)*10, "quit")); err != nil {
			t.Fatal(err)
		}
	}
	store.SaveRun(sampleRun("tcell", 999, "interrupted"))

	runs, err := store.RecentRuns("tea", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Generations != 50 || runs[1].Generations != 40 || runs[2].Generations != 30 {
		t.Errorf("runs not newest first: %d %d %d", runs[0].Generations, runs[1].Generations, runs[2].Generations)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 runs across frontends, got %d", len(all))
	}
	if all[0].Frontend != "tcell" {
		t.Errorf("newest run frontend = %q, expected tcell", all[0].Frontend)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastRun.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(sampleRun("tea", 10, "quit"))
	store.SaveRun(sampleRun("tea", 30, "stable"))
	store.SaveRun(sampleRun("tcell", 100, "stable"))

	tea, err := store.Stats("tea")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if tea.Runs != 2 || tea.TotalGenerations != 40 || tea.MaxGenerations != 30 {
		t.Errorf("tea stats = %+v", tea)
	}
	if tea.AvgGenerations != 20 {
		t.Errorf("AvgGenerations = %v, expected 20", tea.AvgGenerations)
	}
	if tea.StableRuns != 1 {
		t.Errorf("StableRuns = %d, expected 1", tea.StableRuns)
	}

	all, _ := store.Stats("")
	if all.Runs != 3 || all.MaxGenerations != 100 || all.StableRuns != 2 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(sampleRun("tea", 1, "quit"))
	store.SaveRun(sampleRun("tea", 2, "quit"))
	store.SaveRun(sampleRun("tcell", 3, "quit"))

	if err := store.ClearRuns("tea"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	tea, _ := store.RecentRuns("tea", 10)
	if len(tea) != 0 {
		t.Errorf("expected 0 tea runs after clear, got %d", len(tea))
	}
	tcell, _ := store.RecentRuns("tcell", 10)
	if len(tcell) != 1 {
		t.Errorf("tcell runs should be kept, got %d", len(tcell))
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatal(err)
	}
	all, _ := store.RecentRuns("", 10)
	if len(all) != 0 {
		t.Errorf("expected no runs after clearing all, got %d", len(all))
	}
}

func TestStoreReopenPreservesRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, _ := store.SaveRun(sampleRun("tea", 7, "quit"))
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("run lost after reopen: %v", err)
	}
}

func TestStoreRunByShortID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleRun("tea", 42, "quit"))
	if err != nil {
		t.Fatal(err)
	}

	short := ShortID(id)
	if len(short) != ShortIDLen || !strings.HasPrefix(id, short) {
		t.Fatalf("ShortID(%q) = %q", id, short)
	}

	got, err := store.RunByID(short)
	if err != nil {
		t.Fatalf("RunByID(%q) failed: %v", short, err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("RunByID(%q) = %+v, expected run %s", short, got, id)
	}
}

func TestStoreRunByIDPrefix(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"abc-1", "abc-2", "ab%", "x_y"} {
		r := sampleRun("tea", 1, "quit")
		r.ID = id
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
	}{
		{"exact", "abc-1", "abc-1", nil},
		{"ambiguous prefix", "abc", "", ErrAmbiguousID},
		{"percent is literal", "ab%", "ab%", nil},
		{"underscore is literal", "x_", "x_y", nil},
		{"underscore does not match any char", "x-", "", nil},
		{"no match", "zzz", "", nil},
		{"empty", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.RunByID(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RunByID(%q) err = %v, expected %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RunByID(%q) failed: %v", tt.id, err)
			}
			gotID := ""
			if got != nil {
				gotID = got.ID
			}
			if gotID != tt.want {
				t.Errorf("RunByID(%q) = %q, expected %q", tt.id, gotID, tt.want)
			}
		})
	}
}
