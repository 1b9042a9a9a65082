package forms

import "fmt"

// Snapshot is one immutable (metadata, ordered items) pair representing a form
// at one point in time. It is created once per export run, passed by read-only
// reference to every exporter, and never mutated by the pipeline.
type Snapshot struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Items    []Item   `json:"items" yaml:"items"`
}

// Validate checks the structural invariants every pipeline stage relies on:
// item indexes are 0-based, strictly increasing and contiguous, and the
// metadata item count matches the actual sequence length.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("forms: snapshot is nil")
	}
	if s.Metadata.ItemCount != len(s.Items) {
		return fmt.Errorf("forms: metadata item count %d does not match %d items",
			s.Metadata.ItemCount, len(s.Items))
	}
	for i, item := range s.Items {
		if item.Index != i {
			return fmt.Errorf("forms: item %d has index %d, want %d", item.ID, item.Index, i)
		}
	}
	return nil
}

// PositionsByID builds the identifier → sequence position table used to
// resolve jump targets. Built once per resolution pass; later duplicates of an
// identifier are ignored so the mapping stays deterministic.
func (s *Snapshot) PositionsByID() map[int64]int {
	positions := make(map[int64]int, len(s.Items))
	for i, item := range s.Items {
		if _, seen := positions[item.ID]; seen {
			continue
		}
		positions[item.ID] = i
	}
	return positions
}
