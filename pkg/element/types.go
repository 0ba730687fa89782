package element

import (
	"fmt"
	"strings"
)

// Type tags an element instance with its field type. The set is closed; the
// string value is the tag written to persisted content.
type Type string

const (
	TypeTitle     Type = "Title"
	TypeSubtitle  Type = "Subtitle"
	TypeParagraph Type = "Paragraph"
	TypeSeparator Type = "Separator"
	TypeSpacer    Type = "Spacer"
	TypeText      Type = "Text"
	TypeNumber    Type = "Number"
	TypeTextarea  Type = "Textarea"
	TypeDate      Type = "Date"
	TypeSelect    Type = "Select"
	TypeCheckbox  Type = "Checkbox"
)

// allTypes lists every tag in palette order: layout elements first, then
// input fields.
var allTypes = []Type{
	TypeTitle,
	TypeSubtitle,
	TypeParagraph,
	TypeSeparator,
	TypeSpacer,
	TypeText,
	TypeNumber,
	TypeTextarea,
	TypeDate,
	TypeSelect,
	TypeCheckbox,
}

// Types returns a copy of the closed enumeration in palette order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t belongs to the enumeration.
func (t Type) Valid() bool {
	for _, candidate := range allTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// IsInput reports whether elements of this type collect a value from the end
// user. Layout types (title, subtitle, paragraph, separator, spacer) do not.
func (t Type) IsInput() bool {
	switch t {
	case TypeText, TypeNumber, TypeTextarea, TypeDate, TypeSelect, TypeCheckbox:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// ParseType resolves a tag, accepting surrounding whitespace and case
// differences ("text", " TEXT ").
func ParseType(raw string) (Type, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range allTypes {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("element: unknown type %q", raw)
}
