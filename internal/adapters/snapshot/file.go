// Package snapshot persists whole-store snapshots as JSON files.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// File is a ports.SnapshotRepository backed by one JSON file. Saves write a
// temporary file in the same directory and rename it over the target, so a
// reader never sees a partial snapshot.
type File[T any] struct {
	path string
}

// NewFile returns a repository for path. The directory is created on first save.
func NewFile[T any](path string) *File[T] {
	return &File[T]{path: path}
}

// Path returns the snapshot location.
func (f *File[T]) Path() string {
	return f.path
}

// Load reads the snapshot. A missing file yields domain.ErrNotFound.
func (f *File[T]) Load(ctx context.Context) (T, error) {
	var snap T

	if err := ctx.Err(); err != nil {
		return snap, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, domain.NewNotFoundError("snapshot", f.path)
	}

	if err != nil {
		return snap, fmt.Errorf("reading snapshot %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decoding snapshot %s: %w", f.path, err)
	}

	return snap, nil
}

// Save writes snap atomically.
func (f *File[T]) Save(ctx context.Context, snap T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp snapshot: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing snapshot %s: %w", f.path, err)
	}

	committed = true

	return nil
}
