package placement

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// SourceKind identifies what is being dragged.
type SourceKind int

const (
	SourceNone SourceKind = iota
	// SourcePalette is a palette button spawning a new element.
	SourcePalette
	// SourceElement is an element already on the canvas.
	SourceElement
)

// Source is the dragged item.
type Source struct {
	Kind      SourceKind
	Type      element.Type
	ElementID string
}

// PaletteSource returns a source for the palette button of t.
func PaletteSource(t element.Type) Source {
	return Source{Kind: SourcePalette, Type: t}
}

// ElementSource returns a source for the canvas element id.
func ElementSource(id string) Source {
	return Source{Kind: SourceElement, ElementID: id}
}

// TargetKind identifies where the item is dropped.
type TargetKind int

const (
	TargetNone TargetKind = iota
	// TargetCanvas is the empty canvas area after the last element.
	TargetCanvas
	// TargetElement is one half of an existing element.
	TargetElement
)

// Half is the part of a target element the pointer is over.
type Half int

const (
	HalfNone Half = iota
	UpperHalf
	LowerHalf
)

func (h Half) String() string {
	switch h {
	case UpperHalf:
		return "upper"
	case LowerHalf:
		return "lower"
	default:
		return "none"
	}
}

// ParseHalf maps "upper"/"top" and "lower"/"bottom" to a Half.
func ParseHalf(value string) (Half, error) {
	switch value {
	case "upper", "top":
		return UpperHalf, nil
	case "lower", "bottom":
		return LowerHalf, nil
	case "", "none":
		return HalfNone, nil
	default:
		return HalfNone, fmt.Errorf("placement: unknown half %q", value)
	}
}

// Target is the drop location.
type Target struct {
	Kind      TargetKind
	ElementID string
	Half      Half
}

// CanvasTarget returns the empty canvas target.
func CanvasTarget() Target {
	return Target{Kind: TargetCanvas}
}

// ElementTarget returns a target over one half of element id.
func ElementTarget(id string, half Half) Target {
	return Target{Kind: TargetElement, ElementID: id, Half: half}
}

// MutationKind describes the change a drop produces.
type MutationKind int

const (
	MutationNone MutationKind = iota
	// MutationInsert adds a freshly constructed element.
	MutationInsert
	// MutationMove removes an element and reinserts its clone.
	MutationMove
)

func (k MutationKind) String() string {
	switch k {
	case MutationInsert:
		return "insert"
	case MutationMove:
		return "move"
	default:
		return "none"
	}
}

// Mutation is the outcome of a resolved drop. For moves, Index is computed
// against the list after the moved element has been removed and From is
// the element's original position.
type Mutation struct {
	Kind      MutationKind
	Index     int
	Element   element.Instance
	ElementID string
	From      int
}

// Mutator is the store surface a mutation needs.
type Mutator interface {
	AddElement(index int, inst element.Instance)
	RemoveElement(id string)
}

// Apply performs the mutation on m. MutationNone leaves m untouched.
func (m Mutation) Apply(target Mutator) {
	switch m.Kind {
	case MutationInsert:
		target.AddElement(m.Index, m.Element)
	case MutationMove:
		target.RemoveElement(m.ElementID)
		target.AddElement(m.Index, m.Element)
	case MutationNone:
	}
}

// ApplyList returns a new list with the mutation applied; elements is not
// modified.
func (m Mutation) ApplyList(elements []element.Instance) []element.Instance {
	list := &listMutator{elements: element.CloneList(elements)}
	m.Apply(list)
	return list.elements
}

type listMutator struct {
	elements []element.Instance
}

func (l *listMutator) AddElement(index int, inst element.Instance) {
	l.elements = slices.Insert(l.elements, index, inst)
}

func (l *listMutator) RemoveElement(id string) {
	if idx := element.IndexOf(l.elements, id); idx >= 0 {
		l.elements = slices.Delete(l.elements, idx, idx+1)
	}
}
