package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

var (
	// ErrSubmitted is returned by Submit once the session reached Submitted.
	ErrSubmitted = errors.New("capture: form already submitted")
	// ErrInFlight is returned by Submit while a hand-off is pending.
	ErrInFlight = errors.New("capture: submission in flight")
	// ErrNoRecorder is returned by Submit when no Recorder is wired.
	ErrNoRecorder = errors.New("capture: no recorder configured")
)

// State is the capture lifecycle state.
type State int

const (
	StateEditing State = iota
	StateInvalid
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateInvalid:
		return "invalid"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Editable reports whether values can still change. Invalid is an editable
// state: the form stays open with errors displayed.
func (s State) Editable() bool {
	return s == StateEditing || s == StateInvalid
}

// Recorder persists a valid submission. It is the only blocking call the
// session makes.
type Recorder interface {
	RecordSubmission(ctx context.Context, formID string, payload []byte) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, formID string, payload []byte) error

// RecordSubmission calls fn.
func (fn RecorderFunc) RecordSubmission(ctx context.Context, formID string, payload []byte) error {
	return fn(ctx, formID, payload)
}

// Level grades a notification.
type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Notification is a transient message for the person filling the form.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier shows transient notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify calls fn.
func (fn NotifierFunc) Notify(ctx context.Context, n Notification) { fn(ctx, n) }

// Result describes a Submit attempt.
type Result struct {
	State      State
	Invalid    []string
	Generation uint64
	Payload    []byte
}

// Option customises a Session.
type Option func(*Session)

// WithRegistry sets the registry used for validation and input views.
func WithRegistry(reg *fields.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithNotifier sets the notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithLogger sets the logger used for submission outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session captures one person's submission of one form. State changes are
// serialised internally; the recorder call runs outside the lock and a second
// Submit during it fails with ErrInFlight.
type Session struct {
	formID   string
	elements []element.Instance
	registry *fields.Registry
	recorder Recorder
	notifier Notifier
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	values     map[string]string
	invalid    map[string]bool
	generation uint64
	inFlight   bool
}

// NewSession starts capturing values for the given form content.
func NewSession(formID string, elements []element.Instance, recorder Recorder, opts ...Option) *Session {
	s := &Session{
		formID:   formID,
		elements: element.CloneList(elements),
		recorder: recorder,
		registry: fields.Default(),
		logger:   slog.New(slog.DiscardHandler),
		values:   map[string]string{},
		invalid:  map[string]bool{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// FormID returns the form being captured.
func (s *Session) FormID() string { return s.formID }

// Elements returns a copy of the captured form's elements.
func (s *Session) Elements() []element.Instance { return element.CloneList(s.elements) }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns the number of failed validation runs so far.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Value returns the collected value for id.
func (s *Session) Value(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[id]
}

// Values returns a copy of the collected values.
func (s *Session) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.values)
}

// Invalid returns a copy of the error set of the last validation run.
func (s *Session) Invalid() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.invalid)
}

// SubmitValue records a confirmed value for id. Edits after submission are
// ignored; an edit while Invalid returns the session to Editing. The error
// flags stay until the next validation run.
func (s *Session) SubmitValue(id, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Editable() {
		return
	}
	s.values[id] = value
	if s.state == StateInvalid {
		s.state = StateEditing
	}
}

// Submit validates the current values and, when they all pass, hands the
// payload to the recorder. Validation failures are reported in the Result
// with a nil error; recorder failures return the error and keep the values.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	s.mu.Lock()
	switch {
	case s.state == StateSubmitted:
		s.mu.Unlock()
		return Result{State: StateSubmitted}, ErrSubmitted
	case s.inFlight:
		state := s.state
		s.mu.Unlock()
		return Result{State: state}, ErrInFlight
	case s.recorder == nil:
		state := s.state
		s.mu.Unlock()
		return Result{State: state}, ErrNoRecorder
	}

	snapshot := maps.Clone(s.values)
	outcome := CollectSubmission(s.registry, s.elements, snapshot)
	s.invalid = outcome.Errors()
	if !outcome.OK() {
		s.state = StateInvalid
		s.generation++
		result := Result{State: s.state, Invalid: outcome.Invalid, Generation: s.generation}
		s.mu.Unlock()

		s.logger.DebugContext(ctx, "submission rejected", "form.id", s.formID, "invalid", outcome.Invalid)
		s.notify(ctx, Notification{Level: LevelError, Title: "Error", Message: "Please check the form for errors"})
		return result, nil
	}

	payload, err := EncodePayload(outcome.Payload)
	if err != nil {
		state := s.state
		s.mu.Unlock()
		return Result{State: state}, err
	}
	s.inFlight = true
	s.mu.Unlock()

	err = s.recorder.RecordSubmission(ctx, s.formID, payload)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.state = StateEditing
		result := Result{State: s.state, Generation: s.generation}
		s.mu.Unlock()

		s.logger.WarnContext(ctx, "submission not recorded", "form.id", s.formID, "error", err)
		s.notify(ctx, Notification{Level: LevelError, Title: "Error", Message: "Something went wrong"})
		return result, fmt.Errorf("capture: record submission: %w", err)
	}
	s.state = StateSubmitted
	s.values = map[string]string{}
	s.invalid = map[string]bool{}
	result := Result{State: s.state, Generation: s.generation, Payload: payload}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "submission recorded", "form.id", s.formID, "bytes", len(payload))
	return result, nil
}

// InputState returns the render state for element id. Once submitted the
// state carries no Submit callback.
func (s *Session) InputState(id string) fields.InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := fields.InputState{
		Value:      s.values[id],
		Invalid:    s.invalid[id],
		Generation: s.generation,
	}
	if s.state.Editable() {
		state.Submit = s.SubmitValue
	}
	return state
}

// InputViews renders every element for the live form in order.
func (s *Session) InputViews() []fields.View {
	views := make([]fields.View, 0, len(s.elements))
	for _, inst := range s.elements {
		views = append(views, s.registry.Input(inst, s.InputState(inst.ID)))
	}
	return views
}

func (s *Session) notify(ctx context.Context, n Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}
