package navigation_test

import (
	"testing"

	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/navigation"
	"github.com/formscribe/formscribe/pkg/testsupport"
)

func newResolver(t *testing.T, options ...navigation.ResolverOption) *navigation.Resolver {
	t.Helper()
	snapshot := testsupport.SampleSnapshot()
	index := navigation.BuildIndex(snapshot.Items)
	return navigation.NewResolver(snapshot, index, options...)
}

func TestResolveContinue(t *testing.T) {
	resolver := newResolver(t)
	directive := &forms.Navigation{Type: forms.NavigationContinue}

	if got := resolver.Resolve(directive, navigation.ModeInline); got != "" {
		t.Fatalf("inline continue = %q, want empty", got)
	}
	if got := resolver.Resolve(directive, navigation.ModeSummary); got != "Continue to next section" {
		t.Fatalf("summary continue = %q", got)
	}
}

func TestResolveNilDirectiveBehavesAsContinue(t *testing.T) {
	resolver := newResolver(t)
	if got := resolver.Resolve(nil, navigation.ModeInline); got != "" {
		t.Fatalf("inline nil = %q, want empty", got)
	}
	if got := resolver.Resolve(nil, navigation.ModeSummary); got != "Continue to next section" {
		t.Fatalf("summary nil = %q", got)
	}
}

func TestResolveSubmit(t *testing.T) {
	resolver := newResolver(t)
	directive := &forms.Navigation{Type: forms.NavigationSubmit}

	for _, mode := range []navigation.Mode{navigation.ModeInline, navigation.ModeSummary} {
		if got := resolver.Resolve(directive, mode); got != "**Submit form**" {
			t.Fatalf("submit mode %v = %q", mode, got)
		}
	}
}

func TestResolveJumpToSection(t *testing.T) {
	resolver := newResolver(t)
	directive := &forms.Navigation{Type: forms.NavigationGoToPage, TargetID: 200}

	want := "**Go to section 2 (End)**"
	if got := resolver.Resolve(directive, navigation.ModeInline); got != want {
		t.Fatalf("jump = %q, want %q", got, want)
	}
}

func TestResolveJumpUnknownTargetIsSilent(t *testing.T) {
	reported := 0
	resolver := newResolver(t, navigation.WithReporter(forms.ReporterFunc(func(string, ...any) {
		reported++
	})))

	directive := &forms.Navigation{Type: forms.NavigationGoToPage, TargetID: 9999}
	if got := resolver.Resolve(directive, navigation.ModeInline); got != "" {
		t.Fatalf("unknown target = %q, want empty", got)
	}
	if reported != 1 {
		t.Fatalf("expected 1 report, got %d", reported)
	}
}

func TestResolveJumpToNonPageBreakIsSilent(t *testing.T) {
	reported := 0
	resolver := newResolver(t, navigation.WithReporter(forms.ReporterFunc(func(string, ...any) {
		reported++
	})))

	// Item 101 exists but is a text question, not a page break.
	directive := &forms.Navigation{Type: forms.NavigationGoToPage, TargetID: 101}
	if got := resolver.Resolve(directive, navigation.ModeSummary); got != "" {
		t.Fatalf("non-page-break target = %q, want empty", got)
	}
	if reported != 1 {
		t.Fatalf("expected 1 report, got %d", reported)
	}
}
