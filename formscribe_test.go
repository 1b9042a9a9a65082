package formscribe_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/formscribe/formscribe"
	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/orchestrator"
	"github.com/formscribe/formscribe/pkg/sink"
	"github.com/formscribe/formscribe/pkg/testsupport"
)

func TestExportStructured(t *testing.T) {
	content, err := formscribe.ExportStructured(context.Background(), testsupport.SampleSnapshot())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	items, ok := doc["items"].([]any)
	if !ok || len(items) != 6 {
		t.Fatalf("items = %v", doc["items"])
	}
}

func TestExportProse(t *testing.T) {
	content, err := formscribe.ExportProse(context.Background(), testsupport.SampleSnapshot())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "# Customer Survey") {
		t.Fatalf("missing title heading:\n%s", text)
	}
	if !strings.Contains(text, "## Section 1: Intro") {
		t.Fatalf("missing section heading:\n%s", text)
	}
}

func TestExportsAreDeterministic(t *testing.T) {
	snapshot := testsupport.SampleSnapshot()

	first, err := formscribe.ExportStructured(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	second, err := formscribe.ExportStructured(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("structured export is not deterministic")
	}
}

func TestExportRunsFullPipeline(t *testing.T) {
	snapshot := testsupport.SampleSnapshot()
	path := testsupport.WriteSnapshotFile(t, snapshot, t.TempDir(), "form.json")
	memory := sink.NewMemory()

	result, err := formscribe.Export(context.Background(), path,
		orchestrator.WithProvider(forms.NewFileProvider(forms.WithLoaderReporter(forms.DiscardReporter))),
		orchestrator.WithSink(memory),
		orchestrator.WithReporter(forms.DiscardReporter),
	)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(result.Artifacts))
	}
	if len(memory.Names()) != 2 {
		t.Fatalf("sink holds %d artifacts, want 2", len(memory.Names()))
	}
}
