package forms

// ItemType is the raw variant tag carried by every form item. Unknown tags are
// preserved as-is so future item kinds degrade gracefully instead of failing
// the export.
type ItemType string

const (
	ItemTypeText           ItemType = "TEXT"
	ItemTypeParagraphText  ItemType = "PARAGRAPH_TEXT"
	ItemTypeMultipleChoice ItemType = "MULTIPLE_CHOICE"
	ItemTypeCheckbox       ItemType = "CHECKBOX"
	ItemTypeList           ItemType = "LIST"
	ItemTypeScale          ItemType = "SCALE"
	ItemTypeImage          ItemType = "IMAGE"
	ItemTypePageBreak      ItemType = "PAGE_BREAK"
	ItemTypeVideo          ItemType = "VIDEO"
)

// Known reports whether the tag names one of the supported variants.
func (t ItemType) Known() bool {
	switch t {
	case ItemTypeText, ItemTypeParagraphText, ItemTypeMultipleChoice,
		ItemTypeCheckbox, ItemTypeList, ItemTypeScale, ItemTypeImage,
		ItemTypePageBreak, ItemTypeVideo:
		return true
	}
	return false
}

// HasChoices reports whether the variant carries an ordered choice list.
func (t ItemType) HasChoices() bool {
	switch t {
	case ItemTypeMultipleChoice, ItemTypeCheckbox, ItemTypeList:
		return true
	}
	return false
}

// SupportsRequired reports whether the variant can be marked as required.
// Layout variants (page breaks, media) always report false instead of erroring.
func (t ItemType) SupportsRequired() bool {
	switch t {
	case ItemTypePageBreak, ItemTypeImage, ItemTypeVideo:
		return false
	}
	return true
}

// NavigationType identifies the action a navigation directive resolves to.
type NavigationType string

const (
	NavigationContinue NavigationType = "CONTINUE"
	NavigationSubmit   NavigationType = "SUBMIT"
	NavigationGoToPage NavigationType = "GO_TO_PAGE"
)

// Navigation is a directive attached to a page break or to a single-select
// choice. TargetID is meaningful only for NavigationGoToPage and names the
// stable identifier of the destination item.
type Navigation struct {
	Type     NavigationType `json:"type" yaml:"type"`
	TargetID int64          `json:"targetId,omitempty" yaml:"targetId,omitempty"`
}

// Choice is one entry of a choice-bearing item. Navigation is legal only on
// MULTIPLE_CHOICE and LIST choices; CHECKBOX choices never carry one.
type Choice struct {
	Text       string      `json:"text" yaml:"text"`
	Navigation *Navigation `json:"navigation,omitempty" yaml:"navigation,omitempty"`
}

// ScaleBounds holds the inclusive range and the optional boundary labels of a
// linear-scale item.
type ScaleBounds struct {
	Lower      int    `json:"lower" yaml:"lower"`
	Upper      int    `json:"upper" yaml:"upper"`
	LowerLabel string `json:"lowerLabel,omitempty" yaml:"lowerLabel,omitempty"`
	UpperLabel string `json:"upperLabel,omitempty" yaml:"upperLabel,omitempty"`
}

// ImagePayload describes the embedded binary of an image item. Data travels
// base64-encoded on the wire.
type ImagePayload struct {
	Data   []byte `json:"data" yaml:"data"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// Item is one entry of a form snapshot. Fields beyond the common block are
// populated only for matching variants; the zero values mean "not applicable".
type Item struct {
	ID       int64    `json:"id" yaml:"id"`
	Index    int      `json:"index" yaml:"index"`
	Type     ItemType `json:"type" yaml:"type"`
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	HelpText string   `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`

	Choices        []Choice      `json:"choices,omitempty" yaml:"choices,omitempty"`
	HasOtherOption bool          `json:"hasOtherOption,omitempty" yaml:"hasOtherOption,omitempty"`
	Scale          *ScaleBounds  `json:"scale,omitempty" yaml:"scale,omitempty"`
	Image          *ImagePayload `json:"image,omitempty" yaml:"image,omitempty"`
	Alignment      string        `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Navigation     *Navigation   `json:"navigation,omitempty" yaml:"navigation,omitempty"`
}

// Metadata is the top-level descriptive record of a form.
type Metadata struct {
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description,omitempty" yaml:"description,omitempty"`
	PublishedURL        string   `json:"publishedUrl,omitempty" yaml:"publishedUrl,omitempty"`
	Editors             []string `json:"editors,omitempty" yaml:"editors,omitempty"`
	ItemCount           int      `json:"itemCount" yaml:"itemCount"`
	ConfirmationMessage string   `json:"confirmationMessage,omitempty" yaml:"confirmationMessage,omitempty"`
	ClosedFormMessage   string   `json:"closedFormMessage,omitempty" yaml:"closedFormMessage,omitempty"`
}
