// Package forms is the storage collaborator of the designer: form records,
// published share links, visit counters and recorded submissions.
package forms

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("forms: not found")
	ErrForbidden      = errors.New("forms: forbidden")
	ErrEmptyForm      = errors.New("forms: form has no elements")
	ErrNotPublished   = errors.New("forms: form is not published")
	ErrInvalidName    = errors.New("forms: name is required")
	ErrInvalidContent = errors.New("forms: invalid content")
	ErrDuplicateName  = errors.New("forms: a form with this name already exists")
	ErrUnauthorized   = errors.New("forms: user required")
)

// Form is a stored form record. Content holds the serialized element list.
type Form struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Published   bool      `json:"published"`
	ShareURL    string    `json:"shareURL"`
	Visits      int       `json:"visits"`
	Submissions int       `json:"submissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Submission is one recorded payload.
type Submission struct {
	ID        string    `json:"id"`
	FormID    string    `json:"formId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists forms and submissions. Implementations return ErrNotFound
// for unknown ids and ErrNotPublished from AddSubmission when the form is not
// published.
type Store interface {
	CreateForm(ctx context.Context, form Form) error
	GetForm(ctx context.Context, id string) (Form, error)
	GetFormByShareURL(ctx context.Context, shareURL string) (Form, error)
	// ListForms returns the forms of userID, newest first.
	ListForms(ctx context.Context, userID string) ([]Form, error)
	UpdateContent(ctx context.Context, id, content string) error
	Publish(ctx context.Context, id string) error
	IncrementVisits(ctx context.Context, id string) error
	// AddSubmission stores sub and increments the form's submission count.
	AddSubmission(ctx context.Context, sub Submission) error
	// ListSubmissions returns the submissions of formID, oldest first.
	ListSubmissions(ctx context.Context, formID string) ([]Submission, error)
}
