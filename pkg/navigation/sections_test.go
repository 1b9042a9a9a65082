package navigation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/navigation"
)

func TestBuildIndex(t *testing.T) {
	items := []forms.Item{
		{ID: 1, Index: 0, Type: forms.ItemTypePageBreak, Title: "Intro"},
		{ID: 2, Index: 1, Type: forms.ItemTypeText, Title: "Name"},
		{ID: 3, Index: 2, Type: forms.ItemTypePageBreak},
		{ID: 4, Index: 3, Type: forms.ItemTypePageBreak, Title: "Wrap up"},
	}

	got := navigation.BuildIndex(items)
	want := navigation.SectionIndex{
		0: {Number: 1, Title: "Intro"},
		2: {Number: 2, Title: "Section 2"},
		3: {Number: 3, Title: "Wrap up"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIndexSkipsOtherVariants(t *testing.T) {
	items := []forms.Item{
		{ID: 1, Index: 0, Type: forms.ItemTypeText, Title: "Name"},
		{ID: 2, Index: 1, Type: forms.ItemTypeCheckbox, Title: "Topics"},
	}
	if got := navigation.BuildIndex(items); len(got) != 0 {
		t.Fatalf("expected empty index, got %v", got)
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	items := []forms.Item{
		{ID: 1, Index: 0, Type: forms.ItemTypePageBreak, Title: "A"},
		{ID: 2, Index: 1, Type: forms.ItemTypePageBreak},
	}
	first := navigation.BuildIndex(items)
	second := navigation.BuildIndex(items)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("BuildIndex not deterministic:\n%s", diff)
	}
}

func TestMapTitles(t *testing.T) {
	items := []forms.Item{
		{ID: 1, Index: 0, Type: forms.ItemTypePageBreak, Title: "intro"},
	}
	index := navigation.BuildIndex(items).MapTitles(strings.ToUpper)
	if index[0].Title != "INTRO" {
		t.Fatalf("MapTitles: got %q", index[0].Title)
	}
	if index[0].Number != 1 {
		t.Fatalf("MapTitles changed numbering: %d", index[0].Number)
	}
}
