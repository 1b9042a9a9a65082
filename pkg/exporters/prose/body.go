package prose

import (
	"fmt"

	"github.com/formscribe/formscribe/pkg/forms"
	"github.com/formscribe/formscribe/pkg/navigation"
)

const otherOptionLine = "- Other…"

// body renders the type-specific block of one titled, non-page-break item.
func (e *Exporter) body(item *forms.Item, convert func(string) string, resolver *navigation.Resolver) []string {
	switch item.Type {
	case forms.ItemTypeText:
		return []string{"_Open text response_"}

	case forms.ItemTypeParagraphText:
		return []string{"_Long text response_"}

	case forms.ItemTypeMultipleChoice:
		return e.choiceLines("_Choose one:_", item, convert, resolver)

	case forms.ItemTypeList:
		return e.choiceLines("_Select from dropdown:_", item, convert, resolver)

	case forms.ItemTypeCheckbox:
		// Checkbox choices never carry per-choice navigation.
		return e.choiceLines("_Choose all that apply:_", item, convert, nil)

	case forms.ItemTypeScale:
		return scaleLines(item, convert)

	case forms.ItemTypeImage:
		return []string{"_Image_"}

	case forms.ItemTypeVideo:
		return []string{"_Video_"}

	default:
		return []string{fmt.Sprintf("_Unsupported item type: %s_", item.Type)}
	}
}

func (e *Exporter) choiceLines(label string, item *forms.Item, convert func(string) string, resolver *navigation.Resolver) []string {
	lines := []string{label}
	for _, choice := range item.Choices {
		line := "- " + convert(choice.Text)
		if resolver != nil && choice.Navigation != nil {
			if descriptor := resolver.Resolve(choice.Navigation, navigation.ModeInline); descriptor != "" {
				line += " → " + descriptor
			}
		}
		lines = append(lines, line)
	}
	if item.HasOtherOption {
		lines = append(lines, otherOptionLine)
	}
	return lines
}

func scaleLines(item *forms.Item, convert func(string) string) []string {
	scale := item.Scale
	if scale == nil {
		return nil
	}
	// An absent boundary label renders as an empty string, not omitted, as
	// soon as the other one is present.
	if scale.LowerLabel == "" && scale.UpperLabel == "" {
		return []string{fmt.Sprintf("Scale: %d to %d", scale.Lower, scale.Upper)}
	}
	return []string{fmt.Sprintf("Scale: %d (%s) to %d (%s)",
		scale.Lower, convert(scale.LowerLabel), scale.Upper, convert(scale.UpperLabel))}
}
