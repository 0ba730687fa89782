package designer

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Store holds the ordered element list and the current selection. Contract
// violations (bad index, duplicate id, changing an element's id or type)
// panic.
type Store struct {
	elements []element.Instance
	selected string
}

// NewStore returns a store seeded with elements.
func NewStore(elements ...element.Instance) *Store {
	s := &Store{}
	s.SetElements(elements)
	return s
}

// Elements returns a deep copy of the list in order.
func (s *Store) Elements() []element.Instance {
	out := element.CloneList(s.elements)
	if out == nil {
		out = []element.Instance{}
	}
	return out
}

// Len returns the number of elements.
func (s *Store) Len() int { return len(s.elements) }

// Index returns the position of id, or -1.
func (s *Store) Index(id string) int {
	return element.IndexOf(s.elements, id)
}

// Get returns a copy of the element with id.
func (s *Store) Get(id string) (element.Instance, bool) {
	idx := s.Index(id)
	if idx < 0 {
		return element.Instance{}, false
	}
	return s.elements[idx].Clone(), true
}

// AddElement inserts inst at index; 0 <= index <= Len().
func (s *Store) AddElement(index int, inst element.Instance) {
	if index < 0 || index > len(s.elements) {
		panic(fmt.Sprintf("designer: insert index %d out of range [0,%d]", index, len(s.elements)))
	}
	if err := inst.Check(); err != nil {
		panic(fmt.Sprintf("designer: insert invalid element: %v", err))
	}
	if s.Index(inst.ID) >= 0 {
		panic(fmt.Sprintf("designer: duplicate element id %q", inst.ID))
	}
	s.elements = slices.Insert(s.elements, index, inst.Clone())
}

// UpdateElement replaces the element with id in place. Missing ids are
// ignored; inst must keep the id and type of the element it replaces.
func (s *Store) UpdateElement(id string, inst element.Instance) {
	idx := s.Index(id)
	if idx < 0 {
		return
	}
	current := s.elements[idx]
	if inst.ID != current.ID || inst.Type != current.Type {
		panic(fmt.Sprintf("designer: update of %q cannot change id or type (%q %s -> %q %s)",
			id, current.ID, current.Type, inst.ID, inst.Type))
	}
	if err := inst.Check(); err != nil {
		panic(fmt.Sprintf("designer: update invalid element: %v", err))
	}
	s.elements[idx] = inst.Clone()
}

// RemoveElement deletes the first element with id. The selection is left
// alone; Session.Remove clears it when needed.
func (s *Store) RemoveElement(id string) {
	idx := s.Index(id)
	if idx < 0 {
		return
	}
	s.elements = slices.Delete(s.elements, idx, idx+1)
}

// SetElements replaces the whole list.
func (s *Store) SetElements(elements []element.Instance) {
	if err := element.CheckList(elements); err != nil {
		panic(fmt.Sprintf("designer: set elements: %v", err))
	}
	s.elements = element.CloneList(elements)
}

// Selected returns the selected element, if any.
func (s *Store) Selected() (element.Instance, bool) {
	if s.selected == "" {
		return element.Instance{}, false
	}
	return s.Get(s.selected)
}

// SelectedID returns the selected id or "".
func (s *Store) SelectedID() string { return s.selected }

// SetSelected selects id. An empty id clears the selection.
func (s *Store) SetSelected(id string) { s.selected = id }

// ClearSelection drops the selection.
func (s *Store) ClearSelection() { s.selected = "" }
