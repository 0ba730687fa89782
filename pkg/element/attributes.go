package element

import "slices"

// Attributes is the type-specific configuration bag of an element instance.
// The interface is sealed: only the structs in this file implement it.
type Attributes interface {
	// Type reports the element type the payload belongs to.
	Type() Type
	clone() Attributes
	sealed()
}

// TitleAttributes configures a title heading.
type TitleAttributes struct {
	Title string `json:"title" jsonschema:"minLength=1,maxLength=50"`
}

// SubtitleAttributes configures a subtitle heading.
type SubtitleAttributes struct {
	Subtitle string `json:"subtitle" jsonschema:"minLength=1,maxLength=50"`
}

// ParagraphAttributes configures a block of static text.
type ParagraphAttributes struct {
	Text string `json:"text" jsonschema:"minLength=1,maxLength=500"`
}

// SeparatorAttributes is empty; separators have nothing to configure.
type SeparatorAttributes struct{}

// SpacerAttributes configures vertical whitespace in pixels.
type SpacerAttributes struct {
	Height int `json:"height" jsonschema:"minimum=1,maximum=200"`
}

// TextAttributes configures a single line text input.
type TextAttributes struct {
	Label       string `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText  string `json:"helperText" jsonschema:"maxLength=200"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder" jsonschema:"maxLength=50"`
}

// NumberAttributes configures a numeric input.
type NumberAttributes struct {
	Label       string `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText  string `json:"helperText" jsonschema:"maxLength=200"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder" jsonschema:"maxLength=50"`
}

// TextareaAttributes configures a multi-line text input.
type TextareaAttributes struct {
	Label       string `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText  string `json:"helperText" jsonschema:"maxLength=200"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder" jsonschema:"maxLength=50"`
	Rows        int    `json:"rows" jsonschema:"minimum=1,maximum=10"`
}

// DateAttributes configures a date picker.
type DateAttributes struct {
	Label      string `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText string `json:"helperText" jsonschema:"maxLength=200"`
	Required   bool   `json:"required"`
}

// SelectAttributes configures a single choice dropdown.
type SelectAttributes struct {
	Label       string   `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText  string   `json:"helperText" jsonschema:"maxLength=200"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder" jsonschema:"maxLength=50"`
	Options     []string `json:"options"`
}

// CheckboxAttributes configures a single checkbox. The collected value is the
// literal "true" or "false".
type CheckboxAttributes struct {
	Label      string `json:"label" jsonschema:"minLength=1,maxLength=50"`
	HelperText string `json:"helperText" jsonschema:"maxLength=200"`
	Required   bool   `json:"required"`
}

func (TitleAttributes) Type() Type     { return TypeTitle }
func (SubtitleAttributes) Type() Type  { return TypeSubtitle }
func (ParagraphAttributes) Type() Type { return TypeParagraph }
func (SeparatorAttributes) Type() Type { return TypeSeparator }
func (SpacerAttributes) Type() Type    { return TypeSpacer }
func (TextAttributes) Type() Type      { return TypeText }
func (NumberAttributes) Type() Type    { return TypeNumber }
func (TextareaAttributes) Type() Type  { return TypeTextarea }
func (DateAttributes) Type() Type      { return TypeDate }
func (SelectAttributes) Type() Type    { return TypeSelect }
func (CheckboxAttributes) Type() Type  { return TypeCheckbox }

func (a TitleAttributes) clone() Attributes     { return a }
func (a SubtitleAttributes) clone() Attributes  { return a }
func (a ParagraphAttributes) clone() Attributes { return a }
func (a SeparatorAttributes) clone() Attributes { return a }
func (a SpacerAttributes) clone() Attributes    { return a }
func (a TextAttributes) clone() Attributes      { return a }
func (a NumberAttributes) clone() Attributes    { return a }
func (a TextareaAttributes) clone() Attributes  { return a }
func (a DateAttributes) clone() Attributes      { return a }
func (a CheckboxAttributes) clone() Attributes  { return a }

func (a SelectAttributes) clone() Attributes {
	a.Options = slices.Clone(a.Options)
	if a.Options == nil {
		a.Options = []string{}
	}
	return a
}

func (TitleAttributes) sealed()     {}
func (SubtitleAttributes) sealed()  {}
func (ParagraphAttributes) sealed() {}
func (SeparatorAttributes) sealed() {}
func (SpacerAttributes) sealed()    {}
func (TextAttributes) sealed()      {}
func (NumberAttributes) sealed()    {}
func (TextareaAttributes) sealed()  {}
func (DateAttributes) sealed()      {}
func (SelectAttributes) sealed()    {}
func (CheckboxAttributes) sealed()  {}

// CloneAttributes returns a deep copy of attrs. Nil stays nil.
func CloneAttributes(attrs Attributes) Attributes {
	if attrs == nil {
		return nil
	}
	return attrs.clone()
}

// Required reports the required flag of an input payload. The second result
// is false for layout payloads, which have no required concept.
func Required(attrs Attributes) (required bool, applicable bool) {
	switch a := attrs.(type) {
	case TextAttributes:
		return a.Required, true
	case NumberAttributes:
		return a.Required, true
	case TextareaAttributes:
		return a.Required, true
	case DateAttributes:
		return a.Required, true
	case SelectAttributes:
		return a.Required, true
	case CheckboxAttributes:
		return a.Required, true
	case TitleAttributes, SubtitleAttributes, ParagraphAttributes, SeparatorAttributes, SpacerAttributes:
		return false, false
	default:
		return false, false
	}
}

// Label returns the display label of an input payload, or the heading/text of
// a layout payload. Separators and spacers have none.
func Label(attrs Attributes) string {
	switch a := attrs.(type) {
	case TitleAttributes:
		return a.Title
	case SubtitleAttributes:
		return a.Subtitle
	case ParagraphAttributes:
		return a.Text
	case TextAttributes:
		return a.Label
	case NumberAttributes:
		return a.Label
	case TextareaAttributes:
		return a.Label
	case DateAttributes:
		return a.Label
	case SelectAttributes:
		return a.Label
	case CheckboxAttributes:
		return a.Label
	default:
		return ""
	}
}
