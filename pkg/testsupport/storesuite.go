package testsupport

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formdesigner/pkg/forms"
)

// RunStoreSuite exercises a forms.Store implementation. newStore must return
// an empty store per call.
func RunStoreSuite(t *testing.T, newStore func(t *testing.T) forms.Store) {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	form := func(id, user, name string, offset time.Duration) forms.Form {
		return forms.Form{
			ID:        id,
			UserID:    user,
			Name:      name,
			Content:   "[]",
			ShareURL:  "share-" + id,
			CreatedAt: base.Add(offset),
		}
	}

	t.Run("create and get", func(t *testing.T) {
		store := newStore(t)
		ctx := t.Context()
		want := form("f1", "u1", "Survey", 0)
		want.Description = "About you"
		require.NoError(t, store.CreateForm(ctx, want))

		got, err := store.GetForm(ctx, "f1")
		require.NoError(t, err)
		require.Equal(t, want, got)

		byShare, err := store.GetFormByShareURL(ctx, "share-f1")
		require.NoError(t, err)
		require.Equal(t, want, byShare)

		_, err = store.GetForm(ctx, "missing")
		require.ErrorIs(t, err, forms.ErrNotFound)
		_, err = store.GetFormByShareURL(ctx, "missing")
		require.ErrorIs(t, err, forms.ErrNotFound)
	})

	t.Run("duplicate names per user", func(t *testing.T) {
		store := newStore(t)
		ctx := t.Context()
		require.NoError(t, store.CreateForm(ctx, form("f1", "u1", "Survey", 0)))
		require.ErrorIs(t, store.CreateForm(ctx, form("f2", "u1", "Survey", time.Minute)), forms.ErrDuplicateName)
		require.NoError(t, store.CreateForm(ctx, form("f3", "u2", "Survey", time.Minute)))
	})

	t.Run("list newest first", func(t *testing.T) {
		store := newStore(t)
		ctx := t.Context()
		require.NoError(t, store.CreateForm(ctx, form("old", "u1", "Old", 0)))
		require.NoError(t, store.CreateForm(ctx, form("new", "u1", "New", time.Hour)))
		require.NoError(t, store.CreateForm(ctx, form("other", "u2", "Other", 2*time.Hour)))

		list, err := store.ListForms(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "new", list[0].ID)
		require.Equal(t, "old", list[1].ID)

		empty, err := store.ListForms(ctx, "nobody")
		require.NoError(t, err)
		require.NotNil(t, empty)
		require.Empty(t, empty)
	})

	t.Run("update publish and count visits", func(t *testing.T) {
		store := newStore(t)
		ctx := t.Context()
		require.NoError(t, store.CreateForm(ctx, form("f1", "u1", "Survey", 0)))

		require.NoError(t, store.UpdateContent(ctx, "f1", `[{"id":"a","type":"Separator"}]`))
		require.NoError(t, store.Publish(ctx, "f1"))
		require.NoError(t, store.IncrementVisits(ctx, "f1"))
		require.NoError(t, store.IncrementVisits(ctx, "f1"))

		got, err := store.GetForm(ctx, "f1")
		require.NoError(t, err)
		require.True(t, got.Published)
		require.Equal(t, 2, got.Visits)
		require.Equal(t, `[{"id":"a","type":"Separator"}]`, got.Content)

		require.ErrorIs(t, store.UpdateContent(ctx, "missing", "[]"), forms.ErrNotFound)
		require.ErrorIs(t, store.Publish(ctx, "missing"), forms.ErrNotFound)
		require.ErrorIs(t, store.IncrementVisits(ctx, "missing"), forms.ErrNotFound)
	})

	t.Run("submissions require published form", func(t *testing.T) {
		store := newStore(t)
		ctx := t.Context()
		require.NoError(t, store.CreateForm(ctx, form("f1", "u1", "Survey", 0)))

		sub := forms.Submission{ID: "s1", FormID: "f1", Content: `{"a":"1"}`, CreatedAt: base}
		err := store.AddSubmission(ctx, sub)
		require.True(t, errors.Is(err, forms.ErrNotPublished), "expected ErrNotPublished, got %v", err)

		require.ErrorIs(t, store.AddSubmission(ctx, forms.Submission{ID: "s0", FormID: "missing", Content: "{}", CreatedAt: base}), forms.ErrNotFound)

		require.NoError(t, store.Publish(ctx, "f1"))
		require.NoError(t, store.AddSubmission(ctx, sub))
		second := forms.Submission{ID: "s2", FormID: "f1", Content: `{"a":"2"}`, CreatedAt: base.Add(time.Second)}
		require.NoError(t, store.AddSubmission(ctx, second))

		subs, err := store.ListSubmissions(ctx, "f1")
		require.NoError(t, err)
		require.Equal(t, []forms.Submission{sub, second}, subs)

		got, err := store.GetForm(ctx, "f1")
		require.NoError(t, err)
		require.Equal(t, 2, got.Submissions)

		_, err = store.ListSubmissions(ctx, "missing")
		require.ErrorIs(t, err, forms.ErrNotFound)
	})
}
