// Package formscribe converts a structured form snapshot into two derived
// representations: a lossless JSON document and a narrative markdown document.
// The root package fronts the orchestrator for callers that want a single
// entry point; the building blocks live under pkg/.
package formscribe

import (
	"context"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/exporters/prose"
	"github.com/formscribe/formscribe/pkg/exporters/structured"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/orchestrator"
)

// Snapshot aliases the snapshot type for convenience.
type Snapshot = forms.Snapshot

// Options aliases the shared export options.
type Options = export.Options

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ExportStructured renders the snapshot as pretty-printed JSON. It is a pure
// function of the snapshot and can run concurrently with ExportProse over the
// same value.
func ExportStructured(ctx context.Context, snapshot *forms.Snapshot) ([]byte, error) {
	return structured.New().Export(ctx, snapshot, export.Options{})
}

// ExportProse renders the snapshot as a markdown narrative.
func ExportProse(ctx context.Context, snapshot *forms.Snapshot) ([]byte, error) {
	return prose.New().Export(ctx, snapshot, export.Options{})
}

// Export runs the full pipeline for a form identifier: fetch once through the
// provider, export every default format from that one snapshot, and hand each
// artifact to the orchestrator's sink.
func Export(ctx context.Context, formID string, options ...orchestrator.Option) (*orchestrator.Result, error) {
	return orchestrator.New(options...).Run(ctx, orchestrator.Request{FormID: formID})
}
