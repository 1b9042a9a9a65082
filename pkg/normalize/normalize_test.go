package normalize_test

import (
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/normalize"
)

func silent() *normalize.Normalizer {
	return normalize.New(normalize.WithReporter(forms.DiscardReporter))
}

func TestNormalizeCommonFields(t *testing.T) {
	item := forms.Item{
		ID:       7,
		Index:    3,
		Type:     forms.ItemTypeText,
		Title:    "Name",
		HelpText: "Full legal name",
		Required: true,
	}

	got := silent().Normalize(item)

	if got.ID != 7 || got.Index != 3 || got.Type != "TEXT" {
		t.Fatalf("common fields mismatch: %+v", got)
	}
	if got.Title != "Name" || got.HelpText != "Full legal name" || !got.Required {
		t.Fatalf("common fields mismatch: %+v", got)
	}
	if got.Points != 0 {
		t.Fatalf("points must always be 0, got %d", got.Points)
	}
	if got.Choices != nil || got.Navigation != nil || got.Image != nil {
		t.Fatalf("text item carries variant fields: %+v", got)
	}
}

func TestNormalizeChoiceVariants(t *testing.T) {
	nav := &forms.Navigation{Type: forms.NavigationGoToPage, TargetID: 42}
	item := forms.Item{
		ID:    1,
		Type:  forms.ItemTypeMultipleChoice,
		Title: "Pick",
		Choices: []forms.Choice{
			{Text: "A"},
			{Text: "B", Navigation: nav},
		},
		HasOtherOption: true,
	}

	got := silent().Normalize(item)

	want := []normalize.ChoiceRecord{
		{Text: "A"},
		{Text: "B", Navigation: &normalize.NavigationRecord{Type: "GO_TO_PAGE", TargetID: 42}},
	}
	if diff := cmp.Diff(want, got.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if got.HasOtherOption == nil || !*got.HasOtherOption {
		t.Fatalf("hasOtherOption not carried: %+v", got.HasOtherOption)
	}
}

func TestNormalizeCheckboxStripsChoiceNavigation(t *testing.T) {
	item := forms.Item{
		ID:   2,
		Type: forms.ItemTypeCheckbox,
		Choices: []forms.Choice{
			{Text: "A", Navigation: &forms.Navigation{Type: forms.NavigationSubmit}},
		},
	}

	got := silent().Normalize(item)
	if got.Choices[0].Navigation != nil {
		t.Fatalf("checkbox choice kept navigation: %+v", got.Choices[0])
	}
}

func TestNormalizeMissingChoiceListIsEmptyAndReported(t *testing.T) {
	reports := 0
	n := normalize.New(normalize.WithReporter(forms.ReporterFunc(func(string, ...any) {
		reports++
	})))

	got := n.Normalize(forms.Item{ID: 3, Type: forms.ItemTypeList})

	if got.Choices == nil {
		t.Fatalf("choices must be an empty sequence, got nil")
	}
	if len(got.Choices) != 0 {
		t.Fatalf("expected empty choices, got %v", got.Choices)
	}
	if reports != 1 {
		t.Fatalf("expected 1 report, got %d", reports)
	}
}

func TestNormalizeScale(t *testing.T) {
	item := forms.Item{
		ID:    4,
		Type:  forms.ItemTypeScale,
		Scale: &forms.ScaleBounds{Lower: 1, Upper: 10, LowerLabel: "Never", UpperLabel: "Always"},
	}

	got := silent().Normalize(item)

	if got.LowerBound == nil || *got.LowerBound != 1 || got.UpperBound == nil || *got.UpperBound != 10 {
		t.Fatalf("bounds mismatch: %+v", got)
	}
	if got.LowerLabel == nil || *got.LowerLabel != "Never" || got.UpperLabel == nil || *got.UpperLabel != "Always" {
		t.Fatalf("labels mismatch: %+v", got)
	}
}

func TestNormalizeImage(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	item := forms.Item{
		ID:        5,
		Type:      forms.ItemTypeImage,
		Alignment: "CENTER",
		Image:     &forms.ImagePayload{Data: payload, Name: "logo.png", Origin: "upload"},
	}

	got := silent().Normalize(item)

	if got.Alignment != "CENTER" {
		t.Fatalf("alignment mismatch: %q", got.Alignment)
	}
	if got.Image == nil || got.Image.Data != base64.StdEncoding.EncodeToString(payload) {
		t.Fatalf("image payload mismatch: %+v", got.Image)
	}
}

// Videos need only the alignment field, unlike plain text variants.
func TestNormalizeVideoCarriesOnlyAlignment(t *testing.T) {
	item := forms.Item{
		ID:        6,
		Type:      forms.ItemTypeVideo,
		Alignment: "LEFT",
		Image:     &forms.ImagePayload{Data: []byte("x")},
	}

	got := silent().Normalize(item)

	if got.Alignment != "LEFT" {
		t.Fatalf("alignment mismatch: %q", got.Alignment)
	}
	if got.Image != nil {
		t.Fatalf("video must not carry an image record: %+v", got.Image)
	}
}

func TestNormalizePageBreakDefaultsAndRequired(t *testing.T) {
	got := silent().Normalize(forms.Item{ID: 8, Type: forms.ItemTypePageBreak, Required: true})

	if got.Required {
		t.Fatalf("page breaks cannot be required")
	}
	if got.Navigation == nil || got.Navigation.Type != "CONTINUE" {
		t.Fatalf("missing directive must default to CONTINUE: %+v", got.Navigation)
	}
}

func TestNormalizeUnclassifiedKeepsRawTag(t *testing.T) {
	got := silent().Normalize(forms.Item{ID: 9, Type: forms.ItemType("GRID")})

	if got.Type != "GRID" {
		t.Fatalf("raw tag lost: %q", got.Type)
	}
	if got.Choices != nil || got.Navigation != nil {
		t.Fatalf("unclassified item carries variant fields: %+v", got)
	}
}
