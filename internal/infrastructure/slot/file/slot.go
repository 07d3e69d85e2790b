// Package file stores the snapshot payload as a JSON file on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// Slot writes <dir>/<name>.json. Writes go to a temp file that is renamed over
// the target, so readers never observe a partial payload.
type Slot struct {
	dir  string
	name string
}

// NewSlot creates dir if needed and returns a Slot inside it.
func NewSlot(dir, name string) (*Slot, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("file slot dir: %w", err)
	}
	return &Slot{dir: dir, name: name}, nil
}

func (s *Slot) Name() string { return s.name }

// Path is the location of the slot file.
func (s *Slot) Path() string { return filepath.Join(s.dir, s.name+".json") }

// Load returns domain.ErrSlotEmpty when the file does not exist.
func (s *Slot) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.name, err)
	}
	return b, nil
}

func (s *Slot) Save(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, s.name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync slot %s: %w", s.name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot %s: %w", s.name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replace slot %s: %w", s.name, err)
	}
	return nil
}

// Ping checks that the directory is still there and is a directory.
func (s *Slot) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("slot dir %s is not a directory", s.dir)
	}
	return nil
}

var _ ports.Slot = (*Slot)(nil)
