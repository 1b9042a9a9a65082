package navigation

import (
	"fmt"

	"github.com/formscribe/formscribe/pkg/forms"
)

// Mode selects how a resolved directive is phrased. The two call sites differ
// in exactly one way: a Continue directive renders as silence inline (next to
// a choice) but as an explicit phrase in a section summary.
type Mode int

const (
	// ModeInline renders directives next to individual choices.
	ModeInline Mode = iota
	// ModeSummary renders the default directive trailing a section.
	ModeSummary
)

const submitDescriptor = "**Submit form**"

// Resolver turns navigation directives into human-readable descriptors using
// a section index and the identifier → position table of one snapshot. Both
// lookups are built once before resolution, so forward and backward jump
// targets resolve uniformly.
type Resolver struct {
	positions map[int64]int
	index     SectionIndex
	reporter  forms.Reporter
}

// ResolverOption mutates the Resolver during construction.
type ResolverOption func(*Resolver)

// WithReporter injects the side channel that records dangling jump targets.
// Unresolved targets still render as the empty descriptor; the report exists
// so embedders can surface the condition without changing output.
func WithReporter(r forms.Reporter) ResolverOption {
	return func(res *Resolver) {
		if r != nil {
			res.reporter = r
		}
	}
}

// NewResolver builds a Resolver over one snapshot's items and a pre-built
// section index. Pass the index through SectionIndex.MapTitles first when
// descriptors should carry prose titles.
func NewResolver(snapshot *forms.Snapshot, index SectionIndex, options ...ResolverOption) *Resolver {
	r := &Resolver{
		positions: snapshot.PositionsByID(),
		index:     index,
		reporter:  forms.DiscardReporter,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve maps a directive to its descriptor text. A nil directive behaves as
// Continue. Jump directives whose target does not resolve to an indexed page
// break yield the empty descriptor: the dangling reference is reported, never
// raised as an error.
func (r *Resolver) Resolve(nav *forms.Navigation, mode Mode) string {
	navType := forms.NavigationContinue
	if nav != nil {
		navType = nav.Type
	}

	switch navType {
	case forms.NavigationSubmit:
		return submitDescriptor
	case forms.NavigationGoToPage:
		return r.resolveJump(nav.TargetID)
	default:
		if mode == ModeSummary {
			return "Continue to next section"
		}
		return ""
	}
}

func (r *Resolver) resolveJump(targetID int64) string {
	pos, ok := r.positions[targetID]
	if !ok {
		r.reporter.Report("navigation target not found", "target_id", targetID)
		return ""
	}
	section, ok := r.index[pos]
	if !ok {
		r.reporter.Report("navigation target is not a page break", "target_id", targetID)
		return ""
	}
	return fmt.Sprintf("**Go to section %d (%s)**", section.Number, section.Title)
}
