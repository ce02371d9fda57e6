package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
	"github.com/vovakirdan/tui-clicker/internal/save"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveDocuments(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, err := store.ReadSave(ctx, "default"); !errors.Is(err, save.ErrNoSave) {
		t.Fatalf("ReadSave() on empty slot = %v, want ErrNoSave", err)
	}

	if err := store.WriteSave(ctx, "default", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}
	if err := store.WriteSave(ctx, "default", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("WriteSave() overwrite failed: %v", err)
	}
	if err := store.WriteSave(ctx, "alt", []byte(`{}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}

	doc, err := store.ReadSave(ctx, "default")
	if err != nil {
		t.Fatalf("ReadSave() failed: %v", err)
	}
	if string(doc) != `{"v":2}` {
		t.Errorf("Expected overwritten document, got %s", doc)
	}

	slots, err := store.Slots(ctx)
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 2 || slots[0] != "alt" || slots[1] != "default" {
		t.Errorf("Unexpected slots: %v", slots)
	}

	if err := store.DeleteSave(ctx, "default"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}
	if err := store.DeleteSave(ctx, "default"); !errors.Is(err, save.ErrNoSave) {
		t.Errorf("Second DeleteSave() = %v, want ErrNoSave", err)
	}
}

func TestStoreAsSaveBackend(t *testing.T) {
	ctx := context.Background()
	m := save.NewManager(openTestStore(t))

	p := economy.FromData(economy.PlayerData{
		Currency:      decimal.NewFromInt(1234),
		ClickPower:    decimal.NewFromInt(4),
		OwnedUpgrades: map[string]int{"click_power": 3},
		Stage:         2,
	})
	stats := clicker.Stats{Elapsed: 61, Clicks: 99, TimerStarted: true}

	if _, err := m.Save(ctx, "alice", p, stats); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := m.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	restored, restoredStats := data.Restore()
	if !restored.ToData().Equal(p.ToData()) {
		t.Errorf("Restored player differs: %+v vs %+v", restored.ToData(), p.ToData())
	}
	if restoredStats != stats {
		t.Errorf("Restored stats differ: %+v vs %+v", restoredStats, stats)
	}
}

func TestStoreFastestRuns(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, r := range []Run{
		{Player: "bob", Elapsed: 300, Clicks: 900, WinAmount: 2000},
		{Player: "alice", Elapsed: 120.5, Clicks: 400, WinAmount: 2000},
		{Player: "", Elapsed: 200, Clicks: 10, WinAmount: 2000},
	} {
		if _, err := store.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.FastestRuns(ctx, 10)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Quickest first
	if runs[0].Player != "alice" || runs[0].Elapsed != 120.5 {
		t.Errorf("Expected alice's 120.5s run first, got %+v", runs[0])
	}
	if runs[1].Player != "anonymous" {
		t.Errorf("Expected empty player name to be stored as anonymous, got %q", runs[1].Player)
	}
	if runs[2].Clicks != 900 {
		t.Errorf("Expected slowest run to keep its clicks, got %d", runs[2].Clicks)
	}

	limited, err := store.FastestRuns(ctx, 2)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreBestRun(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	best, err := store.BestRun(ctx)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on empty table, got %+v", best)
	}

	store.RecordRun(ctx, Run{Player: "a", Elapsed: 50})
	store.RecordRun(ctx, Run{Player: "b", Elapsed: 40})

	best, err = store.BestRun(ctx)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Player != "b" {
		t.Errorf("Expected b to hold the best run, got %+v", best)
	}
}

func TestStoreRunStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Count != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordRun(ctx, Run{Player: "a", Elapsed: 100, Clicks: 10})
	store.RecordRun(ctx, Run{Player: "b", Elapsed: 300, Clicks: 30})

	stats, err = store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Count != 2 || stats.Fastest != 100 || stats.AvgElapsed != 200 || stats.TotalClicks != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	store.RecordRun(ctx, Run{Player: "a", Elapsed: 10})
	if err := store.WriteSave(ctx, "default", []byte(`{}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}

	if err := store.ClearRuns(ctx); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.FastestRuns(ctx, 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// Saves are not affected by clearing runs
	if _, err := store.ReadSave(ctx, "default"); err != nil {
		t.Errorf("Save should survive ClearRuns: %v", err)
	}
}
