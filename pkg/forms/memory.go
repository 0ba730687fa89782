package forms

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps records in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	forms       map[string]Form
	submissions map[string][]Submission
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forms:       map[string]Form{},
		submissions: map[string][]Submission{},
	}
}

func (s *MemoryStore) CreateForm(_ context.Context, form Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.forms {
		if existing.UserID == form.UserID && existing.Name == form.Name {
			return ErrDuplicateName
		}
	}
	s.forms[form.ID] = form
	return nil
}

func (s *MemoryStore) GetForm(_ context.Context, id string) (Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[id]
	if !ok {
		return Form{}, ErrNotFound
	}
	return form, nil
}

func (s *MemoryStore) GetFormByShareURL(_ context.Context, shareURL string) (Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, form := range s.forms {
		if form.ShareURL == shareURL {
			return form, nil
		}
	}
	return Form{}, ErrNotFound
}

func (s *MemoryStore) ListForms(_ context.Context, userID string) ([]Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Form, 0)
	for _, form := range s.forms {
		if form.UserID == userID {
			out = append(out, form)
		}
	}
	slices.SortFunc(out, func(a, b Form) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *MemoryStore) UpdateContent(_ context.Context, id, content string) error {
	return s.update(id, func(f *Form) error {
		f.Content = content
		return nil
	})
}

func (s *MemoryStore) Publish(_ context.Context, id string) error {
	return s.update(id, func(f *Form) error {
		f.Published = true
		return nil
	})
}

func (s *MemoryStore) IncrementVisits(_ context.Context, id string) error {
	return s.update(id, func(f *Form) error {
		f.Visits++
		return nil
	})
}

func (s *MemoryStore) AddSubmission(_ context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	form, ok := s.forms[sub.FormID]
	if !ok {
		return ErrNotFound
	}
	if !form.Published {
		return ErrNotPublished
	}
	form.Submissions++
	s.forms[sub.FormID] = form
	s.submissions[sub.FormID] = append(s.submissions[sub.FormID], sub)
	return nil
}

func (s *MemoryStore) ListSubmissions(_ context.Context, formID string) ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.forms[formID]; !ok {
		return nil, ErrNotFound
	}
	return append([]Submission{}, s.submissions[formID]...), nil
}

func (s *MemoryStore) update(id string, fn func(*Form) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	form, ok := s.forms[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(&form); err != nil {
		return err
	}
	s.forms[id] = form
	return nil
}
