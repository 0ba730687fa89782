package render

import (
	"context"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Form is the renderable part of a form record.
type Form struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Elements    []element.Instance `json:"elements"`
}

// Renderer turns a form into bytes (HTML, terminal transcript, JSON...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
