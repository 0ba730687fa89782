package render

import (
	"slices"
	"strings"
)

// FormIDField is the hidden input carrying the form id on submission pages.
const FormIDField = "_form"

// HiddenField is a hidden input emitted next to the visible controls.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField with a trimmed name.
func Hidden(name, value string) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: value}
}

// CSRFToken builds the hidden field carrying an anti-forgery token. The name
// is chosen by the backend, e.g. "_csrf".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored and later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	for _, field := range fields {
		if field.Name != "" {
			out[field.Name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders hidden fields by name for deterministic output.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]HiddenField, 0, len(fields))
	for name, value := range fields {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, HiddenField{Name: name, Value: value})
		}
	}
	slices.SortFunc(out, func(a, b HiddenField) int { return strings.Compare(a.Name, b.Name) })
	return out
}
