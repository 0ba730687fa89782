package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Attribute length limits enforced by the property editor.
const (
	MaxLabelLength       = 50
	MaxPlaceholderLength = 50
	MaxHelperTextLength  = 200
	MaxParagraphLength   = 500
	MinSpacerHeight      = 1
	MaxSpacerHeight      = 200
	MinTextareaRows      = 1
	MaxTextareaRows      = 10
)

// Normalize trims every free-text attribute and drops blank select options.
// The result is a new payload; attrs is not modified.
func Normalize(attrs element.Attributes) element.Attributes {
	switch a := attrs.(type) {
	case element.TitleAttributes:
		a.Title = strings.TrimSpace(a.Title)
		return a
	case element.SubtitleAttributes:
		a.Subtitle = strings.TrimSpace(a.Subtitle)
		return a
	case element.ParagraphAttributes:
		a.Text = strings.TrimSpace(a.Text)
		return a
	case element.SeparatorAttributes, element.SpacerAttributes:
		return a
	case element.TextAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		a.Placeholder = strings.TrimSpace(a.Placeholder)
		return a
	case element.NumberAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		a.Placeholder = strings.TrimSpace(a.Placeholder)
		return a
	case element.TextareaAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		a.Placeholder = strings.TrimSpace(a.Placeholder)
		return a
	case element.DateAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		return a
	case element.SelectAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		a.Placeholder = strings.TrimSpace(a.Placeholder)
		options := make([]string, 0, len(a.Options))
		for _, opt := range a.Options {
			if opt = strings.TrimSpace(opt); opt != "" {
				options = append(options, opt)
			}
		}
		a.Options = options
		return a
	case element.CheckboxAttributes:
		a.Label = strings.TrimSpace(a.Label)
		a.HelperText = strings.TrimSpace(a.HelperText)
		return a
	default:
		return element.CloneAttributes(attrs)
	}
}

// checker accumulates violations in field order.
type checker struct {
	violations []element.Violation
}

func (c *checker) add(field, format string, args ...any) {
	c.violations = append(c.violations, element.Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) required(field, name, value string, limit int) {
	if value == "" {
		c.add(field, "%s is required", name)
		return
	}
	c.maxLength(field, name, value, limit)
}

func (c *checker) maxLength(field, name, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		c.add(field, "%s must be at most %d characters", name, limit)
	}
}

func (c *checker) between(field, name string, value, lower, upper int) {
	if value < lower || value > upper {
		c.add(field, "%s must be between %d and %d", name, lower, upper)
	}
}

// inputText checks the label/helperText/placeholder trio shared by inputs.
func (c *checker) inputText(label, helperText, placeholder string, hasPlaceholder bool) {
	c.required("label", "Label", label, MaxLabelLength)
	c.maxLength("helperText", "Helper text", helperText, MaxHelperTextLength)
	if hasPlaceholder {
		c.maxLength("placeholder", "Placeholder", placeholder, MaxPlaceholderLength)
	}
}

// mismatch reports a payload handed to the wrong descriptor.
func mismatch(want element.Type, attrs element.Attributes) []element.Violation {
	got := "nil"
	if attrs != nil {
		got = string(attrs.Type())
	}
	return []element.Violation{{
		Field:   "type",
		Message: fmt.Sprintf("expected %s attributes, got %s", want, got),
	}}
}
