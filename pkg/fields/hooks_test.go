package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

func TestInput_SubmitRecordsOnceAndReportsValidity(t *testing.T) {
	reg := fields.Default()
	inst := element.Instance{
		ID:         "email",
		Type:       element.TypeText,
		Attributes: element.TextAttributes{Label: "Email", Required: true},
	}

	var calls []string
	view := reg.Input(inst, fields.InputState{
		Value:      "old",
		Invalid:    true,
		Generation: 3,
		Submit: func(id, value string) {
			calls = append(calls, id+"="+value)
		},
	})

	if view.Surface != fields.SurfaceInput || view.Component != fields.ComponentField {
		t.Fatalf("unexpected view kind %s/%s", view.Surface, view.Component)
	}
	if !view.Invalid || view.Generation != 3 || view.Value != "old" || view.ReadOnly {
		t.Fatalf("state not carried into view: %+v", view)
	}
	if view.Submit == nil {
		t.Fatalf("expected interactive view")
	}
	if view.Submit("") {
		t.Fatalf("expected empty value to be invalid")
	}
	if !view.Submit("a@b.c") {
		t.Fatalf("expected value to be valid")
	}
	if diff := cmp.Diff([]string{"email=", "email=a@b.c"}, calls); diff != "" {
		t.Fatalf("callback calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_PreviewIsReadOnly(t *testing.T) {
	view := fields.Default().Input(fields.Default().Construct(element.TypeDate, "d"), fields.InputState{})
	if !view.ReadOnly || view.Submit != nil {
		t.Fatalf("expected read-only preview view, got %+v", view)
	}
}

func TestInput_LayoutHasNoSubmit(t *testing.T) {
	view := fields.Default().Input(fields.Default().Construct(element.TypeTitle, "t"), fields.InputState{
		Submit: func(string, string) { t.Fatalf("layout views must not record values") },
	})
	if view.Submit != nil {
		t.Fatalf("layout view exposes Submit")
	}
	if diff := cmp.Diff(map[string]any{"level": 1, "text": "Title field"}, view.Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_CheckboxCheckedFromValue(t *testing.T) {
	reg := fields.Default()
	inst := reg.Construct(element.TypeCheckbox, "cb")
	if checked := reg.Input(inst, fields.InputState{Value: "true"}).Props["checked"]; checked != true {
		t.Fatalf("expected checked, got %v", checked)
	}
	if checked := reg.Input(inst, fields.InputState{Value: "false"}).Props["checked"]; checked != false {
		t.Fatalf("expected unchecked, got %v", checked)
	}
}

func TestDesigner_FieldProps(t *testing.T) {
	inst := element.Instance{
		ID:   "sel",
		Type: element.TypeSelect,
		Attributes: element.SelectAttributes{
			Label: "Plan", HelperText: "Pick one", Placeholder: "Choose", Options: []string{"free", "pro"}, Required: true,
		},
	}
	view := fields.Default().Designer(inst)
	want := map[string]any{
		"control":     fields.ControlSelect,
		"label":       "Plan",
		"helperText":  "Pick one",
		"placeholder": "Choose",
		"required":    true,
		"options":     []string{"free", "pro"},
	}
	if diff := cmp.Diff(want, view.Props); diff != "" {
		t.Fatalf("designer props mismatch (-want +got):\n%s", diff)
	}
	if view.Surface != fields.SurfaceDesigner || view.ElementID != "sel" {
		t.Fatalf("unexpected designer view %+v", view)
	}
}

func TestProperties_ListsEditableAttributes(t *testing.T) {
	reg := fields.Default()
	cases := map[element.Type][]string{
		element.TypeTitle:     {"title"},
		element.TypeSeparator: nil,
		element.TypeSpacer:    {"height"},
		element.TypeText:      {"label", "placeholder", "helperText", "required"},
		element.TypeTextarea:  {"label", "placeholder", "helperText", "rows", "required"},
		element.TypeDate:      {"label", "helperText", "required"},
		element.TypeSelect:    {"label", "placeholder", "helperText", "options", "required"},
		element.TypeCheckbox:  {"label", "helperText", "required"},
	}
	for typ, want := range cases {
		view := reg.Properties(reg.Construct(typ, "p"))
		props, _ := view.Props["fields"].([]fields.PropertyField)
		var names []string
		for _, f := range props {
			names = append(names, f.Name)
		}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Fatalf("%s properties mismatch (-want +got):\n%s", typ, diff)
		}
	}
}

func TestHooks_PanicOnMismatchedPayload(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fields.Default().Designer(element.Instance{ID: "x", Type: element.TypeText, Attributes: element.DateAttributes{}})
}
