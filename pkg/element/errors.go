package element

import "strings"

// Violation describes one attribute that failed its schema.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AttributeError aggregates every schema violation found in one attribute
// payload. It is returned by property checks; the element is left unchanged.
type AttributeError struct {
	Type       Type        `json:"type"`
	Violations []Violation `json:"violations"`
}

func (e *AttributeError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "element: invalid attributes"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "element: invalid " + string(e.Type) + " attributes: " + strings.Join(parts, "; ")
}

// Fields returns the names of the attributes that failed, in report order.
func (e *AttributeError) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}
