// Package orchestrator coordinates the fetch-once-use-twice pipeline: one
// snapshot acquisition, independent pure exports per requested format, and
// per-artifact persistence through the sink.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/exporters/prose"
	"github.com/formscribe/formscribe/pkg/exporters/structured"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/normalize"
	"github.com/formscribe/formscribe/pkg/sink"
)

// DefaultFormats lists the formats exported when a request names none.
var DefaultFormats = []string{"json", "markdown"}

const filenameTimestampLayout = "2006-01-02_15-04-05"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithProvider injects the snapshot provider.
func WithProvider(provider forms.Provider) Option {
	return func(o *Orchestrator) {
		o.provider = provider
	}
}

// WithRegistry injects an exporter registry.
func WithRegistry(registry *export.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithSink injects the persistence sink. Without one, artifacts are produced
// but not stored.
func WithSink(s sink.Sink) Option {
	return func(o *Orchestrator) {
		o.sink = s
	}
}

// WithClock injects the timestamp source used for artifact filenames.
// Defaults to time.Now; inject a fixed clock for deterministic names.
func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// WithReporter injects the side channel for recoverable export conditions.
func WithReporter(r forms.Reporter) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithFormats overrides the default format list.
func WithFormats(formats ...string) Option {
	return func(o *Orchestrator) {
		if len(formats) > 0 {
			o.formats = formats
		}
	}
}

// WithExportOptions sets the export options shared by every format.
func WithExportOptions(options export.Options) Option {
	return func(o *Orchestrator) {
		o.exportOptions = options
	}
}

// Orchestrator owns the export run. Missing dependencies are initialised with
// the built-in implementations so callers can start with a single constructor
// call.
type Orchestrator struct {
	provider      forms.Provider
	registry      *export.Registry
	sink          sink.Sink
	clock         func() time.Time
	reporter      forms.Reporter
	formats       []string
	exportOptions export.Options
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		clock:    time.Now,
		reporter: forms.NewLogReporter(nil),
		formats:  DefaultFormats,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		registry := export.NewRegistry()
		registry.MustRegister(structured.New(
			structured.WithNormalizer(normalize.New(normalize.WithReporter(o.reporter))),
		))
		registry.MustRegister(prose.New(prose.WithReporter(o.reporter)))
		o.registry = registry
	}
	if o.clock == nil {
		o.clock = time.Now
	}
}

// Request describes one export run. Snapshot bypasses the provider when the
// caller already holds a fetched value; otherwise FormID is handed to the
// provider.
type Request struct {
	FormID   string
	Snapshot *forms.Snapshot
	Formats  []string
}

// Artifact is one produced output.
type Artifact struct {
	Format      string
	Name        string
	ContentType string
	Content     []byte
	Stored      bool
}

// Result collects the artifacts of one run.
type Result struct {
	Artifacts []Artifact
}

// Run acquires the snapshot once, exports every requested format from that
// same immutable value, and stores each artifact independently. Acquisition
// failure aborts the whole run with a single error; export and store failures
// degrade per artifact and are joined into the returned error while the
// remaining artifacts proceed.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := req.Snapshot
	if snapshot == nil {
		if o.provider == nil {
			return nil, errors.New("orchestrator: provider is required when no snapshot is supplied")
		}
		fetched, err := o.provider.Fetch(ctx, req.FormID)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: fetch snapshot %q: %w", req.FormID, err)
		}
		snapshot = fetched
	}

	formats := req.Formats
	if len(formats) == 0 {
		formats = o.formats
	}

	timestamp := o.clock().Format(filenameTimestampLayout)

	result := &Result{}
	var runErrs []error
	for _, format := range formats {
		exporter, err := o.registry.Get(format)
		if err != nil {
			return nil, err
		}

		content, err := exporter.Export(ctx, snapshot, o.exportOptions)
		if err != nil {
			runErrs = append(runErrs, fmt.Errorf("orchestrator: export %s: %w", format, err))
			continue
		}

		artifact := Artifact{
			Format:      format,
			Name:        fmt.Sprintf("form_export_%s.%s", timestamp, exporter.FileExtension()),
			ContentType: exporter.ContentType(),
			Content:     content,
		}

		if o.sink != nil {
			if err := o.sink.Store(ctx, artifact.Name, artifact.Content); err != nil {
				runErrs = append(runErrs, fmt.Errorf("orchestrator: store %s: %w", artifact.Name, err))
			} else {
				artifact.Stored = true
			}
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result, errors.Join(runErrs...)
}
