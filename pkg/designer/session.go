package designer

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/placement"
)

var (
	// ErrElementNotFound is returned when an edit targets an id not in the list.
	ErrElementNotFound = errors.New("designer: element not found")
	// ErrNoPersister is returned by Save when no ContentPersister is wired.
	ErrNoPersister = errors.New("designer: no content persister configured")
)

// ContentPersister stores serialized form content.
type ContentPersister interface {
	SaveContent(ctx context.Context, formID string, content []byte) error
}

// ContentPersisterFunc adapts a function to ContentPersister.
type ContentPersisterFunc func(ctx context.Context, formID string, content []byte) error

// SaveContent calls fn.
func (fn ContentPersisterFunc) SaveContent(ctx context.Context, formID string, content []byte) error {
	return fn(ctx, formID, content)
}

// Option customises a Session.
type Option func(*Session)

// WithRegistry sets the field registry.
func WithRegistry(reg *fields.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithResolver sets the drop resolver.
func WithResolver(r *placement.Resolver) Option {
	return func(s *Session) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithPersister wires the collaborator used by Save.
func WithPersister(p ContentPersister) Option {
	return func(s *Session) {
		s.persister = p
	}
}

// WithElements seeds the store.
func WithElements(elements []element.Instance) Option {
	return func(s *Session) {
		s.store.SetElements(elements)
	}
}

// Session is the designer canvas of one form.
type Session struct {
	formID    string
	registry  *fields.Registry
	resolver  *placement.Resolver
	persister ContentPersister
	store     *Store
}

// NewSession constructs a designer session for formID.
func NewSession(formID string, opts ...Option) *Session {
	s := &Session{
		formID: formID,
		store:  NewStore(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.registry == nil {
		s.registry = fields.Default()
	}
	if s.resolver == nil {
		s.resolver = placement.NewResolver(placement.WithRegistry(s.registry))
	}
	return s
}

// FormID returns the id of the form being designed.
func (s *Session) FormID() string { return s.formID }

// Store exposes the underlying element store.
func (s *Session) Store() *Store { return s.store }

// Registry returns the field registry used by the session.
func (s *Session) Registry() *fields.Registry { return s.registry }

// Load replaces the list with the parsed content and clears the selection.
func (s *Session) Load(content []byte) error {
	elements, err := element.Parse(content)
	if err != nil {
		return fmt.Errorf("designer: load %s: %w", s.formID, err)
	}
	s.store.SetElements(elements)
	s.store.ClearSelection()
	return nil
}

// Content serializes the current list.
func (s *Session) Content() ([]byte, error) {
	return element.Marshal(s.store.elements)
}

// Drop resolves and applies a drop. The returned mutation describes what
// changed; MutationNone means the list was left as is.
func (s *Session) Drop(src placement.Source, tgt placement.Target) (placement.Mutation, error) {
	mutation, err := s.resolver.Resolve(s.store.elements, src, tgt)
	if err != nil {
		return placement.Mutation{}, err
	}
	mutation.Apply(s.store)
	return mutation, nil
}

// Begin starts a cancelable drag gesture; finish it with EndGesture.
func (s *Session) Begin(src placement.Source) *placement.Gesture {
	return s.resolver.Begin(src)
}

// EndGesture drops g on its current target and applies the result.
func (s *Session) EndGesture(g *placement.Gesture) (placement.Mutation, error) {
	mutation, err := g.End(s.store.elements)
	if err != nil {
		return placement.Mutation{}, err
	}
	mutation.Apply(s.store)
	return mutation, nil
}

// Remove deletes an element and clears the selection when it pointed at it.
func (s *Session) Remove(id string) {
	s.store.RemoveElement(id)
	if s.store.selected == id {
		s.store.ClearSelection()
	}
}

// Select marks id as the element being edited.
func (s *Session) Select(id string) error {
	if s.store.Index(id) < 0 {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	s.store.SetSelected(id)
	return nil
}

// ClickCanvas handles a click on the canvas background.
func (s *Session) ClickCanvas() {
	s.store.ClearSelection()
}

// ApplyProperties validates attrs against the element's schema and, when
// valid, stores the normalized payload. On error the element is unchanged.
func (s *Session) ApplyProperties(id string, attrs element.Attributes) error {
	current, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	if attrs == nil || attrs.Type() != current.Type {
		got := "nil"
		if attrs != nil {
			got = string(attrs.Type())
		}
		return fmt.Errorf("designer: element %q is a %s, got %s attributes", id, current.Type, got)
	}
	normalized, err := s.registry.CheckAttributes(attrs)
	if err != nil {
		return err
	}
	current.Attributes = normalized
	s.store.UpdateElement(id, current)
	return nil
}

// Save serializes the list and hands it to the persister.
func (s *Session) Save(ctx context.Context) error {
	if s.persister == nil {
		return ErrNoPersister
	}
	content, err := s.Content()
	if err != nil {
		return fmt.Errorf("designer: encode %s: %w", s.formID, err)
	}
	if err := s.persister.SaveContent(ctx, s.formID, content); err != nil {
		return fmt.Errorf("designer: save %s: %w", s.formID, err)
	}
	return nil
}

// Palette lists the palette buttons.
func (s *Session) Palette() []fields.PaletteEntry {
	return s.registry.Palette()
}

// DesignerViews renders every element for the canvas in list order.
func (s *Session) DesignerViews() []fields.View {
	views := make([]fields.View, 0, len(s.store.elements))
	for _, inst := range s.store.elements {
		views = append(views, s.registry.Designer(inst))
	}
	return views
}

// PropertiesView renders the editor for the selection.
func (s *Session) PropertiesView() (fields.View, bool) {
	inst, ok := s.store.Selected()
	if !ok {
		return fields.View{}, false
	}
	return s.registry.Properties(inst), true
}
