package designer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/designer"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/placement"
)

func newSession(opts ...designer.Option) *designer.Session {
	opts = append([]designer.Option{
		designer.WithResolver(placement.NewResolver(placement.WithIDFunc(element.Sequence("el-")))),
	}, opts...)
	return designer.NewSession("form-1", opts...)
}

func TestSession_DropBuildsList(t *testing.T) {
	s := newSession()

	steps := []struct {
		src placement.Source
		tgt placement.Target
	}{
		{placement.PaletteSource(element.TypeTitle), placement.CanvasTarget()},
		{placement.PaletteSource(element.TypeText), placement.CanvasTarget()},
		{placement.PaletteSource(element.TypeSeparator), placement.ElementTarget("el-2", placement.UpperHalf)},
		{placement.ElementSource("el-1"), placement.ElementTarget("el-2", placement.LowerHalf)},
	}
	for _, step := range steps {
		if _, err := s.Drop(step.src, step.tgt); err != nil {
			t.Fatalf("drop: %v", err)
		}
	}

	var got []string
	for _, inst := range s.Store().Elements() {
		got = append(got, inst.ID)
	}
	if diff := cmp.Diff([]string{"el-3", "el-2", "el-1"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_DropConsistencyErrorLeavesList(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{instance("a", element.TypeText)}))

	_, err := s.Drop(placement.ElementSource("ghost"), placement.ElementTarget("a", placement.UpperHalf))
	var consistency *placement.ConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("expected consistency error, got %v", err)
	}
	if s.Store().Len() != 1 {
		t.Fatalf("list changed after failed drop")
	}
}

func TestSession_GestureCancel(t *testing.T) {
	s := newSession()
	gesture := s.Begin(placement.PaletteSource(element.TypeText))
	gesture.Over(placement.CanvasTarget())
	gesture.Cancel()

	mutation, err := s.EndGesture(gesture)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if mutation.Kind != placement.MutationNone || s.Store().Len() != 0 {
		t.Fatalf("cancelled gesture changed the list")
	}
}

func TestSession_RemoveClearsSelection(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{
		instance("a", element.TypeText),
		instance("b", element.TypeDate),
	}))

	if err := s.Select("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Remove("b")
	if s.Store().SelectedID() != "a" {
		t.Fatalf("removing another element cleared the selection")
	}
	s.Remove("a")
	if s.Store().SelectedID() != "" {
		t.Fatalf("removing the selected element kept the selection")
	}
}

func TestSession_SelectAndClickCanvas(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{instance("a", element.TypeCheckbox)}))

	if err := s.Select("missing"); !errors.Is(err, designer.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if err := s.Select("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	view, ok := s.PropertiesView()
	if !ok || view.ElementID != "a" {
		t.Fatalf("expected properties for a, got %+v", view)
	}
	s.ClickCanvas()
	if _, ok := s.PropertiesView(); ok {
		t.Fatalf("canvas click did not clear selection")
	}
}

func TestSession_ApplyProperties(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{instance("a", element.TypeText)}))

	err := s.ApplyProperties("a", element.TextAttributes{Label: "  Email  ", Required: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	got, _ := s.Store().Get("a")
	want := element.TextAttributes{Label: "Email", Required: true}
	if diff := cmp.Diff(want, got.Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ApplyPropertiesRejectsInvalid(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{instance("a", element.TypeTextarea)}))
	before := s.Store().Elements()

	err := s.ApplyProperties("a", element.TextareaAttributes{Label: "", Rows: 42})
	var attrErr *element.AttributeError
	if !errors.As(err, &attrErr) {
		t.Fatalf("expected AttributeError, got %v", err)
	}
	if diff := cmp.Diff([]string{"label", "rows"}, attrErr.Fields()); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, s.Store().Elements()); diff != "" {
		t.Fatalf("rejected edit mutated the store (-want +got):\n%s", diff)
	}

	if err := s.ApplyProperties("a", element.DateAttributes{Label: "x"}); err == nil {
		t.Fatalf("expected type mismatch error")
	}
	if err := s.ApplyProperties("missing", element.TextAttributes{Label: "x"}); !errors.Is(err, designer.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}

func TestSession_SaveAndLoad(t *testing.T) {
	var saved []byte
	persister := designer.ContentPersisterFunc(func(_ context.Context, formID string, content []byte) error {
		if formID != "form-1" {
			t.Fatalf("unexpected form id %q", formID)
		}
		saved = content
		return nil
	})

	s := newSession(designer.WithPersister(persister))
	if _, err := s.Drop(placement.PaletteSource(element.TypeNumber), placement.CanvasTarget()); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := newSession()
	if err := reloaded.Load(saved); err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(s.Store().Elements(), reloaded.Store().Elements()); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_SaveFailureKeepsStore(t *testing.T) {
	boom := errors.New("boom")
	s := newSession(
		designer.WithElements([]element.Instance{instance("a", element.TypeText)}),
		designer.WithPersister(designer.ContentPersisterFunc(func(context.Context, string, []byte) error { return boom })),
	)
	if err := s.Save(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if s.Store().Len() != 1 {
		t.Fatalf("failed save changed the store")
	}
	if err := newSession().Save(context.Background()); !errors.Is(err, designer.ErrNoPersister) {
		t.Fatalf("expected ErrNoPersister, got %v", err)
	}
}

func TestSession_DesignerViewsFollowOrder(t *testing.T) {
	s := newSession(designer.WithElements([]element.Instance{
		instance("b", element.TypeSpacer),
		instance("a", element.TypeTitle),
	}))
	views := s.DesignerViews()
	if len(views) != 2 || views[0].ElementID != "b" || views[1].ElementID != "a" {
		t.Fatalf("unexpected views %+v", views)
	}
	if len(s.Palette()) != len(element.Types()) {
		t.Fatalf("palette incomplete")
	}
}
