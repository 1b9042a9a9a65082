package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads serialized snapshots from the filesystem or an fs.FS. Documents
// may be JSON or YAML, selected by file extension. Malformed choice entries
// are dropped and reported rather than failing the decode; every other
// structural problem is an acquisition failure and aborts the load.
type Loader struct {
	fsys     fs.FS
	reporter Reporter
}

// LoaderOption mutates the Loader prior to first use.
type LoaderOption func(*Loader)

// WithFileSystem injects an fs.FS implementation for fs-kind sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLoaderReporter injects the side channel used for recoverable decode
// conditions. Defaults to a slog-backed reporter.
func WithLoaderReporter(r Reporter) LoaderOption {
	return func(l *Loader) {
		if r != nil {
			l.reporter = r
		}
	}
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{reporter: NewLogReporter(nil)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads, decodes and validates the snapshot identified by src.
func (l *Loader) Load(ctx context.Context, src Source) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("forms: source is required")
	}

	raw, err := l.read(src)
	if err != nil {
		return nil, fmt.Errorf("forms: read snapshot %q: %w", src.Location(), err)
	}

	var snap Snapshot
	if isYAML(src.Location()) {
		err = yaml.Unmarshal(raw, &snap)
	} else {
		err = json.Unmarshal(raw, &snap)
	}
	if err != nil {
		return nil, fmt.Errorf("forms: decode snapshot %q: %w", src.Location(), err)
	}

	scrubChoices(&snap, l.reporter)

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("forms: invalid snapshot %q: %w", src.Location(), err)
	}
	return &snap, nil
}

func (l *Loader) read(src Source) ([]byte, error) {
	switch src.Kind() {
	case SourceKindFS:
		if l.fsys == nil {
			return nil, fmt.Errorf("no filesystem configured for fs source")
		}
		return fs.ReadFile(l.fsys, src.Location())
	default:
		return os.ReadFile(src.Location())
	}
}

func isYAML(location string) bool {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// scrubChoices drops malformed choice entries (empty text, or per-choice
// navigation on variants that cannot carry it) so a single bad entry degrades
// that item instead of aborting the run.
func scrubChoices(snap *Snapshot, reporter Reporter) {
	for i := range snap.Items {
		item := &snap.Items[i]
		if !item.Type.HasChoices() {
			continue
		}
		kept := item.Choices[:0]
		for _, choice := range item.Choices {
			if strings.TrimSpace(choice.Text) == "" {
				reporter.Report("dropping choice without text", "item_id", item.ID)
				continue
			}
			if item.Type == ItemTypeCheckbox && choice.Navigation != nil {
				reporter.Report("dropping navigation on checkbox choice", "item_id", item.ID)
				choice.Navigation = nil
			}
			kept = append(kept, choice)
		}
		item.Choices = kept
	}
}

// FileProvider resolves form identifiers as snapshot document paths. It is the
// default provider for the CLI, where the "form" being exported is a local
// JSON or YAML snapshot.
type FileProvider struct {
	loader *Loader
}

// NewFileProvider constructs a FileProvider with the supplied loader options.
func NewFileProvider(options ...LoaderOption) *FileProvider {
	return &FileProvider{loader: NewLoader(options...)}
}

// Fetch implements Provider.
func (p *FileProvider) Fetch(ctx context.Context, formID string) (*Snapshot, error) {
	if strings.TrimSpace(formID) == "" {
		return nil, fmt.Errorf("forms: form identifier is required")
	}
	return p.loader.Load(ctx, SourceFromFile(formID))
}
