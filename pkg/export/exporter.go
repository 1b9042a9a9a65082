package export

import (
	"context"
	"time"

	"github.com/formscribe/formscribe/pkg/forms"
)

// Exporter converts a form snapshot into one serialized representation (JSON,
// markdown, …). Implementations are pure functions over the snapshot: no
// shared mutable state, no I/O, safe for concurrent invocation.
type Exporter interface {
	Name() string
	ContentType() string
	FileExtension() string
	Export(ctx context.Context, snapshot *forms.Snapshot, options Options) ([]byte, error)
}

// Options carries per-export instructions shared by every exporter. The zero
// value selects the default behavior.
type Options struct {
	// SanitizeHTML runs rich-text fields through the richtext sanitizer
	// before conversion. Off by default so unrecognized markup passes
	// through verbatim.
	SanitizeHTML bool

	// HeaderTemplate is an optional pongo2 template prepended to the prose
	// document, with title, description and generated_at bindings. Empty
	// means no header.
	HeaderTemplate string

	// Clock supplies the timestamp visible to header templates. Nil means
	// time.Now; inject a fixed clock for deterministic output.
	Clock func() time.Time
}

// Now resolves the effective clock.
func (o Options) Now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}
