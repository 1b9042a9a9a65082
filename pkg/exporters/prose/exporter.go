// Package prose renders a form snapshot as a narrative markdown document:
// headings per section and question, per-choice lines with inline navigation
// annotations, and a trailing default-navigation annotation for every section.
package prose

import (
	"context"
	"fmt"
	"strings"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/navigation"
	"github.com/formscribe/formscribe/pkg/richtext"
)

// Exporter implements export.Exporter for the markdown representation.
type Exporter struct {
	reporter forms.Reporter
}

// Option mutates the Exporter during construction.
type Option func(*Exporter)

// WithReporter injects the side channel that records dangling navigation
// targets encountered while rendering.
func WithReporter(r forms.Reporter) Option {
	return func(e *Exporter) {
		if r != nil {
			e.reporter = r
		}
	}
}

// New constructs the prose exporter.
func New(options ...Option) *Exporter {
	e := &Exporter{reporter: forms.NewLogReporter(nil)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Name implements export.Exporter.
func (e *Exporter) Name() string { return "markdown" }

// ContentType implements export.Exporter.
func (e *Exporter) ContentType() string { return "text/markdown; charset=utf-8" }

// FileExtension implements export.Exporter.
func (e *Exporter) FileExtension() string { return "md" }

// Export implements export.Exporter. The document is the line sequence
// produced by Render, joined with single newlines.
func (e *Exporter) Export(ctx context.Context, snapshot *forms.Snapshot, options export.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := e.Render(snapshot, options)
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// Render walks the snapshot once and returns the ordered text lines of the
// prose document. Deterministic: repeated calls over the same snapshot yield
// identical output.
func (e *Exporter) Render(snapshot *forms.Snapshot, options export.Options) ([]string, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("prose: snapshot is required")
	}

	convert := richtext.ToProse
	if options.SanitizeHTML {
		convert = func(markup string) string {
			return richtext.ToProse(richtext.Sanitize(markup))
		}
	}

	doc := &document{}

	if options.HeaderTemplate != "" {
		header, err := renderHeader(options, snapshot.Metadata)
		if err != nil {
			return nil, err
		}
		doc.emit(header...)
	}

	doc.emit("# " + convert(snapshot.Metadata.Title))
	if snapshot.Metadata.Description != "" {
		doc.emit(convert(snapshot.Metadata.Description))
	}

	index := navigation.BuildIndex(snapshot.Items).MapTitles(convert)
	resolver := navigation.NewResolver(snapshot, index, navigation.WithReporter(e.reporter))

	// The most recently opened page break; its own directive becomes the
	// section's trailing default-navigation annotation once the section
	// closes.
	var openBreak *forms.Item
	counter := 1

	for i := range snapshot.Items {
		item := &snapshot.Items[i]

		if item.Type == forms.ItemTypePageBreak {
			if openBreak != nil {
				doc.emit(defaultAnnotation(resolver, openBreak))
			}
			openBreak = item

			var block []string
			if item.Title != "" {
				section := index[i]
				block = append(block, fmt.Sprintf("## Section %d: %s", section.Number, convert(item.Title)))
			}
			if item.HelpText != "" {
				block = append(block, convert(item.HelpText))
			}
			if len(block) > 0 {
				doc.emit(block...)
			}
			continue
		}

		// Items without a title should not occur, but render nothing
		// rather than crash when they do.
		if item.Title == "" {
			continue
		}

		counter++
		block := []string{fmt.Sprintf("### Q%d. %s", counter, convert(item.Title))}
		if item.HelpText != "" {
			block = append(block, convert(item.HelpText))
		}
		block = append(block, e.body(item, convert, resolver)...)
		doc.emit(block...)
	}

	// The last section's default behavior must not be omitted.
	if openBreak != nil {
		doc.emit(defaultAnnotation(resolver, openBreak))
	}

	return doc.lines, nil
}

func defaultAnnotation(resolver *navigation.Resolver, pageBreak *forms.Item) string {
	descriptor := resolver.Resolve(pageBreak.Navigation, navigation.ModeSummary)
	return fmt.Sprintf("_Default: %s_", descriptor)
}

// document accumulates output lines, separating consecutive blocks with one
// blank line.
type document struct {
	lines []string
}

func (d *document) emit(block ...string) {
	if len(block) == 0 {
		return
	}
	if len(d.lines) > 0 {
		d.lines = append(d.lines, "")
	}
	d.lines = append(d.lines, block...)
}
