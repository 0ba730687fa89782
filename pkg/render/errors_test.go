package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

func TestMapInvalid(t *testing.T) {
	elements := []element.Instance{
		{ID: "name", Type: element.TypeText, Attributes: element.TextAttributes{Label: "Name", Required: true}},
		{ID: "agree", Type: element.TypeCheckbox, Attributes: element.CheckboxAttributes{Label: "Agree", Required: true}},
	}

	got := render.MapInvalid(elements, []string{"name", "agree", "ghost"}, " Please retry ", "", "Please retry")
	want := render.ErrorMapping{
		Fields: map[string][]string{
			"name":  {render.MessageRequired},
			"agree": {render.MessageMustCheck},
		},
		Form: []string{"Unknown field ghost", "Please retry"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMapInvalid_NothingFlagged(t *testing.T) {
	got := render.MapInvalid(nil, nil)
	if !got.Empty() {
		t.Fatalf("expected empty mapping, got %+v", got)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors([]string{" a ", "b"}, "a", " ", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}
