package navigation

import (
	"fmt"

	"github.com/formscribe/formscribe/pkg/forms"
)

// Section describes one page-break-delimited run of items.
type Section struct {
	Number int
	Title  string
}

// SectionIndex maps an item's sequence position to the section it opens. Only
// PAGE_BREAK items appear in the index. The index is derived per export run
// and never persisted.
type SectionIndex map[int]Section

// BuildIndex scans the ordered item sequence once and assigns sequential
// section numbers, starting at 1, to every PAGE_BREAK item. A page break
// without a title gets the synthesized "Section N" title so navigation
// descriptors always have something to point at. Pure function of the input
// order and titles.
func BuildIndex(items []forms.Item) SectionIndex {
	index := make(SectionIndex)
	number := 0
	for i, item := range items {
		if item.Type != forms.ItemTypePageBreak {
			continue
		}
		number++
		title := item.Title
		if title == "" {
			title = fmt.Sprintf("Section %d", number)
		}
		index[i] = Section{Number: number, Title: title}
	}
	return index
}

// MapTitles returns a copy of the index with every section title passed
// through fn. The prose exporter uses this to convert titles to prose once,
// before any descriptor references them.
func (idx SectionIndex) MapTitles(fn func(string) string) SectionIndex {
	if fn == nil {
		return idx
	}
	out := make(SectionIndex, len(idx))
	for pos, section := range idx {
		section.Title = fn(section.Title)
		out[pos] = section
	}
	return out
}
