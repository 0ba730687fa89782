package render

import (
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Default messages attached to flagged elements.
const (
	MessageRequired  = "This field is required"
	MessageMustCheck = "This box must be checked"
)

// ErrorMapping holds messages keyed by element id plus form-level messages
// that belong to no element.
type ErrorMapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// Empty reports whether there is nothing to display.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// MapInvalid turns a set of flagged ids into per-element messages. Ids that
// are not in elements become form-level messages so nothing is lost.
func MapInvalid(elements []element.Instance, invalid []string, formMessages ...string) ErrorMapping {
	byID := make(map[string]element.Instance, len(elements))
	for _, inst := range elements {
		byID[inst.ID] = inst
	}

	mapping := ErrorMapping{Fields: make(map[string][]string, len(invalid))}
	for _, id := range invalid {
		inst, ok := byID[id]
		if !ok {
			mapping.Form = append(mapping.Form, "Unknown field "+id)
			continue
		}
		message := MessageRequired
		if inst.Type == element.TypeCheckbox {
			message = MessageMustCheck
		}
		mapping.Fields[id] = append(mapping.Fields[id], message)
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = MergeFormErrors(mapping.Form, formMessages...)
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping blanks and duplicates while keeping order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)

	out := make([]string, 0, len(combined))
	seen := make(map[string]struct{}, len(combined))
	for _, message := range combined {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
