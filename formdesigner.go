// Package formdesigner is the entry point of the form designer engine. It
// re-exports the engine operations so callers can build, arrange, validate
// and render forms without importing every sub-package.
package formdesigner

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/placement"
	"github.com/goliatone/go-formdesigner/pkg/render"
	"github.com/goliatone/go-formdesigner/pkg/renderers/html"
)

// Instance aliases element.Instance.
type Instance = element.Instance

// Type aliases element.Type.
type Type = element.Type

// Source and Target describe a drag-and-drop gesture.
type (
	Source = placement.Source
	Target = placement.Target
)

// Mutation is the outcome of a resolved drop.
type Mutation = placement.Mutation

// Outcome is the result of validating a submission.
type Outcome = capture.Outcome

// RenderOptions aliases render.RenderOptions for callers that only render.
type RenderOptions = render.RenderOptions

// ConstructElement builds a new instance of t with the type defaults.
func ConstructElement(t Type, id string) (Instance, error) {
	if !t.Valid() {
		return Instance{}, fmt.Errorf("formdesigner: unknown element type %q", t)
	}
	return fields.Default().Construct(t, id), nil
}

// ResolveDrop computes the mutation for dropping src onto tgt. New elements
// get ids from the default element id source.
func ResolveDrop(elements []Instance, src Source, tgt Target) (Mutation, error) {
	return placement.NewResolver().Resolve(elements, src, tgt)
}

// ApplyDrop resolves a drop and returns the resulting list. elements is not
// modified.
func ApplyDrop(elements []Instance, src Source, tgt Target) ([]Instance, Mutation, error) {
	mutation, err := ResolveDrop(elements, src, tgt)
	if err != nil {
		return nil, Mutation{}, err
	}
	return mutation.ApplyList(elements), mutation, nil
}

// ValidateElement reports whether value is acceptable for inst.
func ValidateElement(inst Instance, value string) bool {
	return fields.Default().Validate(inst, value)
}

// CollectSubmission validates values against every element.
func CollectSubmission(elements []Instance, values map[string]string) Outcome {
	return capture.CollectSubmission(fields.Default(), elements, values)
}

// RenderHTML renders form with the built-in HTML renderer.
func RenderHTML(ctx context.Context, form render.Form, opts RenderOptions) ([]byte, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, opts)
}
