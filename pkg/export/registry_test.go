package export_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/formscribe/formscribe/pkg/export"
	"github.com/formscribe/formscribe/pkg/forms"
)

type stubExporter struct {
	name string
}

func (s stubExporter) Name() string          { return s.name }
func (s stubExporter) ContentType() string   { return "text/plain" }
func (s stubExporter) FileExtension() string { return "txt" }
func (s stubExporter) Export(context.Context, *forms.Snapshot, export.Options) ([]byte, error) {
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := export.NewRegistry()
	if err := registry.Register(stubExporter{name: "plain"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	exporter, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if exporter.Name() != "plain" {
		t.Fatalf("wrong exporter: %q", exporter.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := export.NewRegistry()
	registry.MustRegister(stubExporter{name: "plain"})

	if err := registry.Register(stubExporter{name: "plain"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := export.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil exporter")
	}
	if err := registry.Register(stubExporter{}); err == nil {
		t.Fatalf("expected error for unnamed exporter")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := export.NewRegistry()
	registry.MustRegister(stubExporter{name: "zeta"})
	registry.MustRegister(stubExporter{name: "alpha"})

	if diff := cmp.Diff([]string{"alpha", "zeta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("alpha") || registry.Has("missing") {
		t.Fatalf("Has misbehaves")
	}
}
