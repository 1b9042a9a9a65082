// Package sink defines where export artifacts are persisted. A sink accepts a
// named blob of bytes; artifact failures are independent, so one sink error
// never rolls back an already-stored artifact.
package sink

import (
	"context"
	"fmt"
	"strings"
)

// Sink stores one named artifact.
type Sink interface {
	Store(ctx context.Context, name string, content []byte) error
}

// validateName rejects empty names and path traversal; artifact names are
// plain filenames, never paths.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("sink: artifact name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("sink: artifact name %q must not contain path separators", name)
	}
	return nil
}
