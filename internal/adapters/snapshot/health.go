package snapshot

import (
	"context"
	"fmt"
	"os"
)

// DirChecker reports whether a snapshot directory accepts writes.
// Implements ports.HealthChecker.
type DirChecker struct {
	dir string
}

// NewDirChecker returns a checker for dir.
func NewDirChecker(dir string) *DirChecker {
	return &DirChecker{dir: dir}
}

// Name returns the health check name.
func (c *DirChecker) Name() string {
	return "snapshot-dir"
}

// Check creates and removes a probe file in the directory.
func (c *DirChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return fmt.Errorf("snapshot dir %s: %w", c.dir, err)
	}

	probe, err := os.CreateTemp(c.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("snapshot dir %s not writable: %w", c.dir, err)
	}

	name := probe.Name()
	_ = probe.Close()

	return os.Remove(name)
}
