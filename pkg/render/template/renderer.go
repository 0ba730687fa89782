package template

import "io"

// FilterFunc transforms a value inside a template. Returning a Safe value
// bypasses autoescaping.
type FilterFunc func(input any, param any) (any, error)

// Safe marks markup that has already been sanitised and must be emitted as-is.
type Safe string

// TemplateRenderer executes named templates or inline template strings.
// When out writers are given, the result is also written to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
