// Package structured produces the lossless JSON representation of a form
// snapshot: verbatim metadata, one normalized record per item, and a redundant
// count that must always equal both the metadata count and the item total.
package structured

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/normalize"
)

// MetadataRecord mirrors the snapshot metadata on the wire, plus the redundant
// item-count field kept for downstream schema compatibility.
type MetadataRecord struct {
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	PublishedURL        string   `json:"publishedUrl,omitempty"`
	Editors             []string `json:"editors,omitempty"`
	Count               int      `json:"count"`
	ConfirmationMessage string   `json:"confirmationMessage,omitempty"`
	ClosedFormMessage   string   `json:"closedFormMessage,omitempty"`
}

// Document is the top-level structured output. Invariant:
// Metadata.Count == Count == len(Items).
type Document struct {
	Metadata MetadataRecord     `json:"metadata"`
	Items    []normalize.Record `json:"items"`
	Count    int                `json:"count"`
}

// Exporter implements export.Exporter for the JSON representation.
type Exporter struct {
	normalizer *normalize.Normalizer
}

// Option mutates the Exporter during construction.
type Option func(*Exporter)

// WithNormalizer injects a pre-configured normalizer (e.g. with a custom
// reporter side channel).
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(e *Exporter) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// New constructs the structured exporter with default dependencies.
func New(options ...Option) *Exporter {
	e := &Exporter{normalizer: normalize.New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Name implements export.Exporter.
func (e *Exporter) Name() string { return "json" }

// ContentType implements export.Exporter.
func (e *Exporter) ContentType() string { return "application/json" }

// FileExtension implements export.Exporter.
func (e *Exporter) FileExtension() string { return "json" }

// Build assembles the structured document without serializing it. Read-only
// over the snapshot, deterministic, no side effects beyond the reporter
// channel of the normalizer.
func (e *Exporter) Build(snapshot *forms.Snapshot) Document {
	items := make([]normalize.Record, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, e.normalizer.Normalize(item))
	}
	return Document{
		Metadata: MetadataRecord{
			Title:               snapshot.Metadata.Title,
			Description:         snapshot.Metadata.Description,
			PublishedURL:        snapshot.Metadata.PublishedURL,
			Editors:             snapshot.Metadata.Editors,
			Count:               snapshot.Metadata.ItemCount,
			ConfirmationMessage: snapshot.Metadata.ConfirmationMessage,
			ClosedFormMessage:   snapshot.Metadata.ClosedFormMessage,
		},
		Items: items,
		Count: len(items),
	}
}

// Export implements export.Exporter, serializing the document as
// pretty-printed UTF-8 JSON.
func (e *Exporter) Export(ctx context.Context, snapshot *forms.Snapshot, _ export.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("structured: snapshot is required")
	}

	doc := e.Build(snapshot)
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("structured: marshal document: %w", err)
	}
	return out, nil
}
