// Package testsupport provides shared fixtures for the exporter test suites.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/formscribe/formscribe/pkg/forms"
)

// SampleSnapshot returns a two-section form exercising every major variant:
// page breaks with continue/submit directives, a jump-carrying choice, a
// scale, and a checkbox. Tests may read it freely but must not mutate it.
func SampleSnapshot() *forms.Snapshot {
	items := []forms.Item{
		{
			ID:         100,
			Index:      0,
			Type:       forms.ItemTypePageBreak,
			Title:      "Intro",
			Navigation: &forms.Navigation{Type: forms.NavigationContinue},
		},
		{
			ID:       101,
			Index:    1,
			Type:     forms.ItemTypeText,
			Title:    "Name",
			Required: true,
		},
		{
			ID:    102,
			Index: 2,
			Type:  forms.ItemTypeMultipleChoice,
			Title: "Overall rating",
			Choices: []forms.Choice{
				{Text: "Good"},
				{Text: "Bad", Navigation: &forms.Navigation{Type: forms.NavigationGoToPage, TargetID: 200}},
			},
			HasOtherOption: true,
		},
		{
			ID:    103,
			Index: 3,
			Type:  forms.ItemTypeScale,
			Title: "Satisfaction",
			Scale: &forms.ScaleBounds{Lower: 1, Upper: 5, LowerLabel: "Low", UpperLabel: "High"},
		},
		{
			ID:         200,
			Index:      4,
			Type:       forms.ItemTypePageBreak,
			Title:      "End",
			Navigation: &forms.Navigation{Type: forms.NavigationSubmit},
		},
		{
			ID:    201,
			Index: 5,
			Type:  forms.ItemTypeCheckbox,
			Title: "Topics of interest",
			Choices: []forms.Choice{
				{Text: "News"},
				{Text: "Events"},
			},
		},
	}

	return &forms.Snapshot{
		Metadata: forms.Metadata{
			Title:               "Customer Survey",
			Description:         "Tell us <b>everything</b>",
			Editors:             []string{"owner@example.com"},
			ItemCount:           len(items),
			ConfirmationMessage: "Thanks!",
		},
		Items: items,
	}
}

// WriteSnapshotFile serializes the snapshot as JSON into dir under name and
// returns the full path.
func WriteSnapshotFile(t *testing.T, snapshot *forms.Snapshot, dir, name string) string {
	t.Helper()

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}
