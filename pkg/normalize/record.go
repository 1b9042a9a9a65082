package normalize

import "github.com/formscribe/formscribe/pkg/forms"

// Record is the uniform shape every item variant normalizes into. Common
// fields are always present; variant-specific fields appear only for matching
// variants. Rich-text fields are copied through untouched — prose conversion
// is the caller's concern, which keeps the structured export lossless.
type Record struct {
	ID       int64  `json:"id"`
	Index    int    `json:"index"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	HelpText string `json:"helpText,omitempty"`
	Required bool   `json:"required"`
	// Points is retained for downstream schema compatibility and is always 0.
	Points int `json:"points"`

	// Choices uses omitzero, not omitempty: a choice-bearing item whose list
	// could not be extracted still serializes an empty array rather than
	// disappearing.
	Choices        []ChoiceRecord    `json:"choices,omitzero"`
	HasOtherOption *bool             `json:"hasOtherOption,omitempty"`
	LowerBound     *int              `json:"lowerBound,omitempty"`
	UpperBound     *int              `json:"upperBound,omitempty"`
	LowerLabel     *string           `json:"lowerLabel,omitempty"`
	UpperLabel     *string           `json:"upperLabel,omitempty"`
	Alignment      string            `json:"alignment,omitempty"`
	Image          *ImageRecord      `json:"image,omitempty"`
	Navigation     *NavigationRecord `json:"navigation,omitempty"`
}

// ChoiceRecord is one normalized choice entry.
type ChoiceRecord struct {
	Text       string            `json:"text"`
	Navigation *NavigationRecord `json:"navigation,omitempty"`
}

// NavigationRecord is the serialized form of a navigation directive.
type NavigationRecord struct {
	Type     string `json:"type"`
	TargetID int64  `json:"targetId,omitempty"`
}

// ImageRecord carries the embedded binary payload of an image item. Data is
// base64-encoded for the JSON wire format.
type ImageRecord struct {
	Data   string `json:"data"`
	Name   string `json:"name,omitempty"`
	Origin string `json:"origin,omitempty"`
}

func navigationRecord(nav *forms.Navigation) *NavigationRecord {
	if nav == nil {
		return nil
	}
	return &NavigationRecord{Type: string(nav.Type), TargetID: nav.TargetID}
}
