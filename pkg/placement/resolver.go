package placement

import (
	"fmt"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

// ConsistencyError reports a drop that names an element missing from the
// list. Adapters should treat it as a bug in their event wiring.
type ConsistencyError struct {
	Source  Source
	Target  Target
	Missing string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("placement: element %q referenced by drop is not in the list", e.Missing)
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithRegistry sets the registry used to construct palette drops.
func WithRegistry(reg *fields.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithIDFunc sets the id source for constructed elements.
func WithIDFunc(fn element.IDFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// Resolver maps drag sources and drop targets to mutations.
type Resolver struct {
	registry *fields.Registry
	newID    element.IDFunc
}

// NewResolver constructs a resolver backed by the default registry and
// random ids unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		registry: fields.Default(),
		newID:    element.NewID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve computes the mutation for dropping src onto tgt given the current
// list. Unrecognised sources or targets resolve to MutationNone. A drop that
// references an element absent from the list returns a *ConsistencyError.
func (r *Resolver) Resolve(elements []element.Instance, src Source, tgt Target) (Mutation, error) {
	switch src.Kind {
	case SourcePalette:
		return r.resolvePalette(elements, src, tgt)
	case SourceElement:
		return r.resolveMove(elements, src, tgt)
	default:
		return Mutation{}, nil
	}
}

func (r *Resolver) resolvePalette(elements []element.Instance, src Source, tgt Target) (Mutation, error) {
	if !src.Type.Valid() {
		return Mutation{}, nil
	}
	switch tgt.Kind {
	case TargetCanvas:
		return Mutation{
			Kind:    MutationInsert,
			Index:   len(elements),
			Element: r.registry.Construct(src.Type, r.newID()),
		}, nil
	case TargetElement:
		if tgt.Half == HalfNone {
			return Mutation{}, nil
		}
		idx := element.IndexOf(elements, tgt.ElementID)
		if idx < 0 {
			return Mutation{}, &ConsistencyError{Source: src, Target: tgt, Missing: tgt.ElementID}
		}
		if tgt.Half == LowerHalf {
			idx++
		}
		return Mutation{
			Kind:    MutationInsert,
			Index:   idx,
			Element: r.registry.Construct(src.Type, r.newID()),
		}, nil
	default:
		return Mutation{}, nil
	}
}

func (r *Resolver) resolveMove(elements []element.Instance, src Source, tgt Target) (Mutation, error) {
	if tgt.Kind != TargetElement || tgt.Half == HalfNone || src.ElementID == tgt.ElementID {
		return Mutation{}, nil
	}
	from := element.IndexOf(elements, src.ElementID)
	if from < 0 {
		return Mutation{}, &ConsistencyError{Source: src, Target: tgt, Missing: src.ElementID}
	}
	if element.IndexOf(elements, tgt.ElementID) < 0 {
		return Mutation{}, &ConsistencyError{Source: src, Target: tgt, Missing: tgt.ElementID}
	}

	moved := elements[from].Clone()
	remaining := make([]element.Instance, 0, len(elements)-1)
	remaining = append(remaining, elements[:from]...)
	remaining = append(remaining, elements[from+1:]...)

	idx := element.IndexOf(remaining, tgt.ElementID)
	if tgt.Half == LowerHalf {
		idx++
	}
	return Mutation{
		Kind:      MutationMove,
		Index:     idx,
		Element:   moved,
		ElementID: src.ElementID,
		From:      from,
	}, nil
}
