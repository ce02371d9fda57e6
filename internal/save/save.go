// Package save persists player progress in named slots. The Manager owns the
// save format; a Backend only stores opaque documents per slot.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
)

// Version is written into every save document.
const Version = "1.0.0"

// DefaultSlot is used when no slot is given.
const DefaultSlot = "default"

var (
	// ErrNoSave is returned when a slot holds no save.
	ErrNoSave = errors.New("save: no save in slot")
	// ErrInvalidSlot is returned for slot names that are not safe file or
	// key names.
	ErrInvalidSlot = errors.New("save: invalid slot name")
)

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// ValidSlot reports whether name can be used as a slot.
func ValidSlot(name string) bool {
	return slotPattern.MatchString(name)
}

// Backend stores raw save documents by slot.
// ReadSave and DeleteSave return ErrNoSave for empty slots.
type Backend interface {
	WriteSave(ctx context.Context, slot string, doc []byte) error
	ReadSave(ctx context.Context, slot string) ([]byte, error)
	DeleteSave(ctx context.Context, slot string) error
	Slots(ctx context.Context) ([]string, error)
}

// SaveData is one saved game.
type SaveData struct {
	ID      string             `json:"id"`
	Slot    string             `json:"slot"`
	Version string             `json:"version"`
	SavedAt time.Time          `json:"saved_at"`
	Player  economy.PlayerData `json:"player"`
	Stats   clicker.Stats      `json:"stats"`
}

// Restore rebuilds the player and run statistics from the save.
func (d *SaveData) Restore() (*economy.Player, clicker.Stats) {
	return economy.FromData(d.Player), d.Stats
}

// Manager reads and writes saves through a Backend.
type Manager struct {
	backend Backend
	now     func() time.Time
}

// NewManager creates a manager over the given backend.
func NewManager(b Backend) *Manager {
	return &Manager{backend: b, now: time.Now}
}

// Save writes the player and stats to slot and returns what was stored.
func (m *Manager) Save(ctx context.Context, slot string, p *economy.Player, stats clicker.Stats) (SaveData, error) {
	if !ValidSlot(slot) {
		return SaveData{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	if p == nil {
		return SaveData{}, errors.New("save: nil player")
	}

	data := SaveData{
		ID:      uuid.NewString(),
		Slot:    slot,
		Version: Version,
		SavedAt: m.now().UTC(),
		Player:  p.ToData(),
		Stats:   stats,
	}

	doc, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return SaveData{}, fmt.Errorf("save: cannot encode slot %s: %w", slot, err)
	}
	if err := m.backend.WriteSave(ctx, slot, doc); err != nil {
		return SaveData{}, fmt.Errorf("save: cannot write slot %s: %w", slot, err)
	}
	return data, nil
}

// Load reads the save in slot. Missing player fields take their defaults
// and broken invariants are repaired on Restore; a document that is not
// valid JSON is an error.
func (m *Manager) Load(ctx context.Context, slot string) (*SaveData, error) {
	if !ValidSlot(slot) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	doc, err := m.backend.ReadSave(ctx, slot)
	if err != nil {
		if errors.Is(err, ErrNoSave) {
			return nil, err
		}
		return nil, fmt.Errorf("save: cannot read slot %s: %w", slot, err)
	}

	data := SaveData{Player: economy.DefaultPlayerData()}
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("save: slot %s is corrupt: %w", slot, err)
	}
	if data.Slot == "" {
		data.Slot = slot
	}
	if data.Version == "" {
		data.Version = Version
	}
	return &data, nil
}

// Has reports whether slot holds a loadable save.
func (m *Manager) Has(ctx context.Context, slot string) bool {
	_, err := m.Load(ctx, slot)
	return err == nil
}

// Delete removes the save in slot.
func (m *Manager) Delete(ctx context.Context, slot string) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	if err := m.backend.DeleteSave(ctx, slot); err != nil {
		if errors.Is(err, ErrNoSave) {
			return err
		}
		return fmt.Errorf("save: cannot delete slot %s: %w", slot, err)
	}
	return nil
}

// Timestamp returns when slot was last saved.
func (m *Manager) Timestamp(ctx context.Context, slot string) (time.Time, error) {
	data, err := m.Load(ctx, slot)
	if err != nil {
		return time.Time{}, err
	}
	return data.SavedAt, nil
}

// List loads every save, ordered by slot name. Corrupt slots are skipped.
func (m *Manager) List(ctx context.Context) ([]SaveData, error) {
	slots, err := m.backend.Slots(ctx)
	if err != nil {
		return nil, fmt.Errorf("save: cannot list slots: %w", err)
	}
	sort.Strings(slots)

	var out []SaveData
	for _, slot := range slots {
		data, err := m.Load(ctx, slot)
		if err != nil {
			continue
		}
		out = append(out, *data)
	}
	return out, nil
}
