package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// FileBackend keeps one JSON document per slot in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend stores saves under dir, created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the save directory.
func (b *FileBackend) Dir() string {
	return b.dir
}

func (b *FileBackend) path(slot string) string {
	return filepath.Join(b.dir, slot+fileExt)
}

// WriteSave replaces the slot file atomically: the document is written to a
// temporary file in the same directory and renamed over the old one.
func (b *FileBackend) WriteSave(ctx context.Context, slot string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", b.dir, err)
	}

	tmp, err := os.CreateTemp(b.dir, slot+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.path(slot))
}

// ReadSave returns the slot document.
func (b *FileBackend) ReadSave(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := os.ReadFile(b.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	return doc, err
}

// DeleteSave removes the slot file.
func (b *FileBackend) DeleteSave(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(b.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoSave
	}
	return err
}

// Slots lists the slots that have a file.
func (b *FileBackend) Slots(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(b.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		if slot := strings.TrimSuffix(name, fileExt); ValidSlot(slot) {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

var _ Backend = (*FileBackend)(nil)
