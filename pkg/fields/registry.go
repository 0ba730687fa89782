package fields

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// PaletteEntry pairs a type with its palette button.
type PaletteEntry struct {
	Type element.Type `json:"type"`
	Palette
}

// Registry maps every element type to its Descriptor. It is populated at
// construction and read-only afterwards, so one instance can be shared by any
// number of sessions and goroutines.
type Registry struct {
	descriptors map[element.Type]Descriptor
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry()
})

// Default returns the shared registry holding the built-in descriptors.
func Default() *Registry {
	return defaultRegistry()
}

// NewRegistry builds a registry from the built-in descriptors, replacing any
// whose type matches one of the overrides. Overrides must target a known
// type and provide every hook.
func NewRegistry(overrides ...Descriptor) (*Registry, error) {
	reg := &Registry{descriptors: make(map[element.Type]Descriptor, len(element.Types()))}
	for _, desc := range builtins() {
		reg.descriptors[desc.Type] = desc
	}
	for _, desc := range overrides {
		if !desc.Type.Valid() {
			return nil, fmt.Errorf("fields: descriptor for unknown type %q", desc.Type)
		}
		if !desc.complete() {
			return nil, fmt.Errorf("fields: descriptor for %q is missing hooks", desc.Type)
		}
		reg.descriptors[desc.Type] = desc
	}
	for _, typ := range element.Types() {
		if _, ok := reg.descriptors[typ]; !ok {
			return nil, fmt.Errorf("fields: no descriptor for %q", typ)
		}
	}
	return reg, nil
}

// MustNewRegistry panics when NewRegistry fails. Useful for init-time wiring.
func MustNewRegistry(overrides ...Descriptor) *Registry {
	reg, err := NewRegistry(overrides...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the descriptor for t. The enumeration and the registry are
// maintained together, so a missing entry is a programming error and panics.
func (r *Registry) Lookup(t element.Type) Descriptor {
	desc, ok := r.descriptors[t]
	if !ok {
		panic(fmt.Sprintf("fields: no descriptor registered for type %q", t))
	}
	return desc
}

// Construct builds a new instance of type t with the given id.
func (r *Registry) Construct(t element.Type, id string) element.Instance {
	return r.Lookup(t).Construct(id)
}

// Validate runs the descriptor validation for the instance type.
func (r *Registry) Validate(inst element.Instance, value string) bool {
	return r.Lookup(inst.Type).Validate(inst, value)
}

// CheckAttributes normalizes attrs and runs the schema of its type. It
// returns the normalized payload, or an *element.AttributeError listing
// every violation.
func (r *Registry) CheckAttributes(attrs element.Attributes) (element.Attributes, error) {
	if attrs == nil {
		return nil, fmt.Errorf("fields: attributes are required")
	}
	normalized := Normalize(attrs)
	if violations := r.Lookup(attrs.Type()).Check(normalized); len(violations) > 0 {
		return nil, &element.AttributeError{Type: attrs.Type(), Violations: violations}
	}
	return normalized, nil
}

// Palette lists the palette buttons in element.Types order.
func (r *Registry) Palette() []PaletteEntry {
	types := element.Types()
	out := make([]PaletteEntry, 0, len(types))
	for _, typ := range types {
		out = append(out, PaletteEntry{Type: typ, Palette: r.Lookup(typ).Palette})
	}
	return out
}

// Designer renders the canvas placeholder of inst.
func (r *Registry) Designer(inst element.Instance) View {
	return r.Lookup(inst.Type).Designer(inst)
}

// Input renders the live control of inst.
func (r *Registry) Input(inst element.Instance, state InputState) View {
	return r.Lookup(inst.Type).Input(inst, state)
}

// Properties renders the attribute editor of inst.
func (r *Registry) Properties(inst element.Instance) View {
	return r.Lookup(inst.Type).Properties(inst)
}

func builtins() []Descriptor {
	return []Descriptor{
		titleDescriptor(),
		subtitleDescriptor(),
		paragraphDescriptor(),
		separatorDescriptor(),
		spacerDescriptor(),
		textDescriptor(),
		numberDescriptor(),
		textareaDescriptor(),
		dateDescriptor(),
		selectDescriptor(),
		checkboxDescriptor(),
	}
}
