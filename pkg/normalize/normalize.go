package normalize

import (
	"encoding/base64"

	"github.com/formscribe/formscribe/pkg/forms"
)

// Normalizer extracts the uniform record shape out of heterogeneous item
// variants. It never fails: unsupported optional capabilities fall back to
// defaults, and a missing choice list yields an empty sequence reported to the
// side channel rather than an error.
type Normalizer struct {
	reporter forms.Reporter
}

// Option mutates the Normalizer during construction.
type Option func(*Normalizer)

// WithReporter injects the error-log side channel for recoverable extraction
// conditions.
func WithReporter(r forms.Reporter) Option {
	return func(n *Normalizer) {
		if r != nil {
			n.reporter = r
		}
	}
}

// New constructs a Normalizer. With no options, recoverable conditions are
// logged through slog.
func New(options ...Option) *Normalizer {
	n := &Normalizer{reporter: forms.NewLogReporter(nil)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	return n
}

// Normalize maps one item of any variant to its uniform record.
func (n *Normalizer) Normalize(item forms.Item) Record {
	record := Record{
		ID:       item.ID,
		Index:    item.Index,
		Type:     string(item.Type),
		Title:    item.Title,
		HelpText: item.HelpText,
		Required: item.Required && item.Type.SupportsRequired(),
		Points:   0,
	}

	switch item.Type {
	case forms.ItemTypeText, forms.ItemTypeParagraphText:
		// Plain text variants carry no extra fields.

	case forms.ItemTypeMultipleChoice, forms.ItemTypeList:
		record.Choices = n.choiceRecords(item, true)
		record.HasOtherOption = boolPtr(item.HasOtherOption)

	case forms.ItemTypeCheckbox:
		record.Choices = n.choiceRecords(item, false)
		record.HasOtherOption = boolPtr(item.HasOtherOption)

	case forms.ItemTypeScale:
		n.applyScale(item, &record)

	case forms.ItemTypeImage:
		record.Alignment = item.Alignment
		if item.Image != nil {
			record.Image = &ImageRecord{
				Data:   base64.StdEncoding.EncodeToString(item.Image.Data),
				Name:   item.Image.Name,
				Origin: item.Image.Origin,
			}
		}

	case forms.ItemTypePageBreak:
		nav := item.Navigation
		if nav == nil {
			nav = &forms.Navigation{Type: forms.NavigationContinue}
		}
		record.Navigation = navigationRecord(nav)

	case forms.ItemTypeVideo:
		// Videos need only the alignment field, unlike the plain text
		// variants that carry nothing extra.
		record.Alignment = item.Alignment

	default:
		// Unclassified: keep the raw tag, emit no variant fields.
	}

	return record
}

// choiceRecords converts the item's choice list, substituting an empty
// sequence when the list is unavailable. withNavigation is false for checkbox
// items, whose choices cannot carry per-choice directives.
func (n *Normalizer) choiceRecords(item forms.Item, withNavigation bool) []ChoiceRecord {
	if item.Choices == nil {
		n.reporter.Report("choice list unavailable, substituting empty",
			"item_id", item.ID, "item_type", string(item.Type))
		return []ChoiceRecord{}
	}
	records := make([]ChoiceRecord, 0, len(item.Choices))
	for _, choice := range item.Choices {
		record := ChoiceRecord{Text: choice.Text}
		if withNavigation {
			record.Navigation = navigationRecord(choice.Navigation)
		}
		records = append(records, record)
	}
	return records
}

func (n *Normalizer) applyScale(item forms.Item, record *Record) {
	if item.Scale == nil {
		n.reporter.Report("scale bounds unavailable", "item_id", item.ID)
		return
	}
	record.LowerBound = intPtr(item.Scale.Lower)
	record.UpperBound = intPtr(item.Scale.Upper)
	record.LowerLabel = stringPtr(item.Scale.LowerLabel)
	record.UpperLabel = stringPtr(item.Scale.UpperLabel)
}

func boolPtr(v bool) *bool       { return &v }
func intPtr(v int) *int          { return &v }
func stringPtr(v string) *string { return &v }
