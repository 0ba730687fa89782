package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc overrides the id source for forms, share links and submissions.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service applies ownership and publishing rules on top of a Store.
type Service struct {
	store  Store
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewService wraps store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateForm stores a new, unpublished form with empty content.
func (s *Service) CreateForm(ctx context.Context, userID, name, description string) (Form, error) {
	if userID == "" {
		return Form{}, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Form{}, ErrInvalidName
	}
	form := Form{
		ID:          s.newID(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Content:     "[]",
		ShareURL:    s.newID(),
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateForm(ctx, form); err != nil {
		return Form{}, fmt.Errorf("forms: create: %w", err)
	}
	s.logger.InfoContext(ctx, "form created", "form.id", form.ID, "user.id", userID)
	return form, nil
}

// GetForm returns a form owned by userID.
func (s *Service) GetForm(ctx context.Context, userID, formID string) (Form, error) {
	if userID == "" {
		return Form{}, ErrUnauthorized
	}
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return Form{}, fmt.Errorf("forms: get %s: %w", formID, err)
	}
	if form.UserID != userID {
		return Form{}, ErrForbidden
	}
	return form, nil
}

// ListForms returns the forms owned by userID, newest first.
func (s *Service) ListForms(ctx context.Context, userID string) ([]Form, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	list, err := s.store.ListForms(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("forms: list: %w", err)
	}
	return list, nil
}

// UpdateContent replaces the element list of a form. content must parse as
// an element list.
func (s *Service) UpdateContent(ctx context.Context, userID, formID string, content []byte) error {
	if _, err := s.GetForm(ctx, userID, formID); err != nil {
		return err
	}
	elements, err := element.Parse(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	normalized, err := element.Marshal(elements)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := s.store.UpdateContent(ctx, formID, string(normalized)); err != nil {
		return fmt.Errorf("forms: update %s: %w", formID, err)
	}
	s.logger.DebugContext(ctx, "form content saved", "form.id", formID, "elements", len(elements))
	return nil
}

// Publish makes a form available through its share link. Forms without
// elements cannot be published.
func (s *Service) Publish(ctx context.Context, userID, formID string) (Form, error) {
	form, err := s.GetForm(ctx, userID, formID)
	if err != nil {
		return Form{}, err
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		return Form{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if len(elements) == 0 {
		return Form{}, ErrEmptyForm
	}
	if err := s.store.Publish(ctx, formID); err != nil {
		return Form{}, fmt.Errorf("forms: publish %s: %w", formID, err)
	}
	form.Published = true
	s.logger.InfoContext(ctx, "form published", "form.id", formID, "share_url", form.ShareURL)
	return form, nil
}

// SharedForm resolves a published form through its share link without
// counting a visit.
func (s *Service) SharedForm(ctx context.Context, shareURL string) (Form, error) {
	form, err := s.store.GetFormByShareURL(ctx, shareURL)
	if err != nil {
		return Form{}, fmt.Errorf("forms: open %s: %w", shareURL, err)
	}
	if !form.Published {
		return Form{}, ErrNotPublished
	}
	return form, nil
}

// PublishedForm returns a published form by id. Anyone may read it.
func (s *Service) PublishedForm(ctx context.Context, formID string) (Form, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return Form{}, fmt.Errorf("forms: get %s: %w", formID, err)
	}
	if !form.Published {
		return Form{}, ErrNotPublished
	}
	return form, nil
}

// OpenShared loads a published form through its share link and counts the
// visit. Visits by the owner are not counted.
func (s *Service) OpenShared(ctx context.Context, shareURL, visitorID string) (Form, error) {
	form, err := s.SharedForm(ctx, shareURL)
	if err != nil {
		return Form{}, err
	}
	if visitorID != "" && visitorID == form.UserID {
		return form, nil
	}
	if err := s.store.IncrementVisits(ctx, form.ID); err != nil {
		return Form{}, fmt.Errorf("forms: count visit %s: %w", form.ID, err)
	}
	form.Visits++
	return form, nil
}

// RecordSubmission stores a validated payload for a published form. It
// satisfies capture.Recorder.
func (s *Service) RecordSubmission(ctx context.Context, formID string, payload []byte) error {
	sub := Submission{
		ID:        s.newID(),
		FormID:    formID,
		Content:   string(payload),
		CreatedAt: s.now(),
	}
	if err := s.store.AddSubmission(ctx, sub); err != nil {
		if !errors.Is(err, ErrNotPublished) && !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "submission store failed", "form.id", formID, "error", err)
		}
		return fmt.Errorf("forms: record submission for %s: %w", formID, err)
	}
	s.logger.InfoContext(ctx, "submission stored", "form.id", formID, "submission.id", sub.ID)
	return nil
}

// ListSubmissions returns the submissions of a form owned by userID.
func (s *Service) ListSubmissions(ctx context.Context, userID, formID string) ([]Submission, error) {
	if _, err := s.GetForm(ctx, userID, formID); err != nil {
		return nil, err
	}
	subs, err := s.store.ListSubmissions(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("forms: list submissions %s: %w", formID, err)
	}
	return subs, nil
}

// SubmissionsTable lays out the submissions of a form owned by userID.
func (s *Service) SubmissionsTable(ctx context.Context, userID, formID string) (Table, error) {
	form, err := s.GetForm(ctx, userID, formID)
	if err != nil {
		return Table{}, err
	}
	elements, err := element.Parse([]byte(form.Content))
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	subs, err := s.store.ListSubmissions(ctx, formID)
	if err != nil {
		return Table{}, fmt.Errorf("forms: list submissions %s: %w", formID, err)
	}
	return BuildTable(elements, subs)
}

// Stats aggregates the counters of every form owned by userID.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	list, err := s.ListForms(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return StatsOf(list), nil
}

// FormStats returns the counters of one form owned by userID.
func (s *Service) FormStats(ctx context.Context, userID, formID string) (Stats, error) {
	form, err := s.GetForm(ctx, userID, formID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(form.Visits, form.Submissions), nil
}

// Persister returns a content persister acting as userID, suitable for
// designer sessions.
func (s *Service) Persister(userID string) *Persister {
	return &Persister{service: s, userID: userID}
}

// Persister saves designer content through the Service ownership checks.
type Persister struct {
	service *Service
	userID  string
}

// SaveContent stores content for formID.
func (p *Persister) SaveContent(ctx context.Context, formID string, content []byte) error {
	return p.service.UpdateContent(ctx, p.userID, formID, content)
}
