package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Dir persists artifacts as files inside a local directory, creating the
// directory on first use.
type Dir struct {
	path string
}

// NewDir constructs a directory sink rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: filepath.Clean(path)}
}

// Store implements Sink.
func (d *Dir) Store(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("sink: create directory %q: %w", d.path, err)
	}
	target := filepath.Join(d.path, name)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("sink: write %q: %w", target, err)
	}
	return nil
}

// Path returns the directory artifacts are written to.
func (d *Dir) Path() string { return d.path }
