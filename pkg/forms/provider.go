package forms

import (
	"context"
	"path/filepath"
)

// Provider supplies form snapshots. Implementations own all blocking and
// fallible I/O; the pipeline fetches once per run and never re-fetches.
// Fetch fails with a provider-defined error when the identifier is invalid or
// inaccessible.
type Provider interface {
	Fetch(ctx context.Context, formID string) (*Snapshot, error)
}

// SourceKind enumerates the supported snapshot origins.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Source identifies where a serialized snapshot lives.
type Source interface {
	Location() string
	Kind() SourceKind
}

// fileSource identifies an on-disk snapshot document.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}
