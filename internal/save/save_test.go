package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *FileBackend) {
	t.Helper()
	b := NewFileBackend(filepath.Join(t.TempDir(), "saves"))
	m := NewManager(b)
	m.now = func() time.Time { return fixedNow }
	return m, b
}

func progressedPlayer(t *testing.T) *economy.Player {
	t.Helper()
	p := economy.FromData(economy.PlayerData{Currency: decimal.NewFromInt(500)})
	u := economy.MustUpgrade(economy.Definition{
		ID:             "click_power",
		Kind:           economy.KindClickPower,
		BaseCost:       decimal.NewFromInt(10),
		CostMultiplier: decimal.RequireFromString("1.5"),
		EffectValue:    decimal.NewFromInt(1),
		MaxLevel:       5,
	})
	require.True(t, p.Purchase(u))
	require.True(t, p.Purchase(u))
	return p
}

func TestValidSlot(t *testing.T) {
	for _, ok := range []string{"default", "slot_1", "Alice-2"} {
		assert.True(t, ValidSlot(ok), ok)
	}
	for _, bad := range []string{"", "../etc", "a b", "slot.json", "x/y", "abcdefghijklmnopqrstuvwxyz0123456789"} {
		assert.False(t, ValidSlot(bad), bad)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	p := progressedPlayer(t)
	stats := clicker.Stats{Elapsed: 42.5, Clicks: 300, TimerStarted: true}

	saved, err := m.Save(ctx, DefaultSlot, p, stats)
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)

	loaded, err := m.Load(ctx, DefaultSlot)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, DefaultSlot, loaded.Slot)
	assert.Equal(t, Version, loaded.Version)
	assert.True(t, fixedNow.Equal(loaded.SavedAt))
	assert.Equal(t, stats, loaded.Stats)

	restored, restoredStats := loaded.Restore()
	assert.True(t, p.ToData().Equal(restored.ToData()))
	assert.Equal(t, stats, restoredStats)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	m, b := newTestManager(t)

	first, err := m.Save(ctx, "main", economy.NewPlayer(), clicker.Stats{})
	require.NoError(t, err)
	second, err := m.Save(ctx, "main", progressedPlayer(t), clicker.Stats{Clicks: 3})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	loaded, err := m.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, second.ID, loaded.ID)

	entries, err := os.ReadDir(b.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "main.json", entries[0].Name())
}

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Load(ctx, "nothing")
	assert.ErrorIs(t, err, ErrNoSave)
	assert.False(t, m.Has(ctx, "nothing"))

	_, err = m.Timestamp(ctx, "nothing")
	assert.ErrorIs(t, err, ErrNoSave)
	assert.ErrorIs(t, m.Delete(ctx, "nothing"), ErrNoSave)
}

func TestInvalidSlot(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Save(ctx, "../escape", economy.NewPlayer(), clicker.Stats{})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	_, err = m.Load(ctx, "../escape")
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.ErrorIs(t, m.Delete(ctx, ""), ErrInvalidSlot)
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	m, b := newTestManager(t)
	require.NoError(t, b.WriteSave(ctx, "broken", []byte(`{"player": {`)))

	_, err := m.Load(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave)
	assert.False(t, m.Has(ctx, "broken"))
}

func TestLoadFillsDefaults(t *testing.T) {
	ctx := context.Background()
	m, b := newTestManager(t)
	require.NoError(t, b.WriteSave(ctx, "old", []byte(`{"player": {"currency": 77, "click_power": 0}}`)))

	loaded, err := m.Load(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "old", loaded.Slot)
	assert.Equal(t, Version, loaded.Version)

	p, stats := loaded.Restore()
	assert.True(t, p.Currency().Equal(decimal.NewFromInt(77)))
	assert.True(t, p.ClickPower().Equal(decimal.NewFromInt(1)), "click power is repaired")
	assert.Equal(t, 1, p.Stage())
	assert.Equal(t, clicker.Stats{}, stats)

	require.NoError(t, b.WriteSave(ctx, "empty", []byte(`{}`)))
	loaded, err = m.Load(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, loaded.Player.Equal(economy.DefaultPlayerData()))
}

func TestDeleteAndTimestamp(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Save(ctx, "a", economy.NewPlayer(), clicker.Stats{})
	require.NoError(t, err)
	assert.True(t, m.Has(ctx, "a"))

	ts, err := m.Timestamp(ctx, "a")
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(ts))

	require.NoError(t, m.Delete(ctx, "a"))
	assert.False(t, m.Has(ctx, "a"))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	m, b := newTestManager(t)

	list, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "missing directory lists nothing")

	for _, slot := range []string{"zeta", "alpha"} {
		_, err := m.Save(ctx, slot, economy.NewPlayer(), clicker.Stats{})
		require.NoError(t, err)
	}
	require.NoError(t, b.WriteSave(ctx, "corrupt", []byte("not json")))
	require.NoError(t, os.WriteFile(filepath.Join(b.Dir(), "notes.txt"), []byte("x"), 0o600))

	list, err = m.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Slot)
	assert.Equal(t, "zeta", list[1].Slot)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _ := newTestManager(t)

	_, err := m.Save(ctx, DefaultSlot, economy.NewPlayer(), clicker.Stats{})
	assert.ErrorIs(t, err, context.Canceled)
}
