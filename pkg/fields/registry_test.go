package fields_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

func TestDefault_CoversEveryType(t *testing.T) {
	reg := fields.Default()
	for _, typ := range element.Types() {
		desc := reg.Lookup(typ)
		if desc.Type != typ {
			t.Fatalf("descriptor for %s reports type %s", typ, desc.Type)
		}
		inst := reg.Construct(typ, "id-"+string(typ))
		if err := inst.Check(); err != nil {
			t.Fatalf("construct %s: %v", typ, err)
		}
		if inst.ID != "id-"+string(typ) {
			t.Fatalf("construct %s: unexpected id %q", typ, inst.ID)
		}
	}
}

func TestLookup_UnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown type")
		}
	}()
	fields.Default().Lookup(element.Type("Signature"))
}

func TestConstruct_IsDeterministic(t *testing.T) {
	reg := fields.Default()
	for _, typ := range element.Types() {
		a := reg.Construct(typ, "same")
		b := reg.Construct(typ, "same")
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("construct %s not deterministic (-a +b):\n%s", typ, diff)
		}
	}
}

func TestConstruct_Defaults(t *testing.T) {
	reg := fields.Default()
	cases := map[element.Type]element.Attributes{
		element.TypeTitle:     element.TitleAttributes{Title: "Title field"},
		element.TypeSubtitle:  element.SubtitleAttributes{Subtitle: "Subtitle field"},
		element.TypeParagraph: element.ParagraphAttributes{Text: "Text here"},
		element.TypeSeparator: element.SeparatorAttributes{},
		element.TypeSpacer:    element.SpacerAttributes{Height: 20},
		element.TypeText: element.TextAttributes{
			Label: "Text field", HelperText: "Helper text", Placeholder: "Value here...",
		},
		element.TypeNumber: element.NumberAttributes{
			Label: "Number field", HelperText: "Helper text", Placeholder: "0",
		},
		element.TypeTextarea: element.TextareaAttributes{
			Label: "Textarea", HelperText: "Helper text", Placeholder: "Value here...", Rows: 3,
		},
		element.TypeDate: element.DateAttributes{Label: "Date field", HelperText: "Pick a date"},
		element.TypeSelect: element.SelectAttributes{
			Label: "Select field", HelperText: "Helper text", Placeholder: "Value here...", Options: []string{},
		},
		element.TypeCheckbox: element.CheckboxAttributes{Label: "Checkbox field", HelperText: "Helper text"},
	}
	for typ, want := range cases {
		got := reg.Construct(typ, "x").Attributes
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("defaults for %s mismatch (-want +got):\n%s", typ, diff)
		}
	}
}

func TestDefaultInstances_AcceptEmptyValue(t *testing.T) {
	reg := fields.Default()
	for _, typ := range element.Types() {
		inst := reg.Construct(typ, "x")
		if !reg.Validate(inst, "") {
			t.Fatalf("default %s rejected an empty value", typ)
		}
	}
}

func TestDefaultInstances_PassAttributeSchema(t *testing.T) {
	reg := fields.Default()
	for _, typ := range element.Types() {
		inst := reg.Construct(typ, "x")
		if _, err := reg.CheckAttributes(inst.Attributes); err != nil {
			t.Fatalf("default %s fails its schema: %v", typ, err)
		}
	}
}

func TestPalette_FollowsTypeOrder(t *testing.T) {
	entries := fields.Default().Palette()
	if len(entries) != len(element.Types()) {
		t.Fatalf("expected %d entries, got %d", len(element.Types()), len(entries))
	}
	for i, typ := range element.Types() {
		if entries[i].Type != typ {
			t.Fatalf("entry %d: expected %s, got %s", i, typ, entries[i].Type)
		}
		if entries[i].Label == "" || entries[i].Icon == "" {
			t.Fatalf("entry %d: palette button incomplete: %+v", i, entries[i])
		}
	}
}

func TestNewRegistry_Overrides(t *testing.T) {
	desc := fields.Default().Lookup(element.TypeSpacer)
	desc.Palette = fields.Palette{Label: "Gap", Icon: "gap"}

	reg, err := fields.NewRegistry(desc)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if got := reg.Lookup(element.TypeSpacer).Palette.Label; got != "Gap" {
		t.Fatalf("override not applied, got %q", got)
	}
	if got := fields.Default().Lookup(element.TypeSpacer).Palette.Label; got == "Gap" {
		t.Fatalf("override leaked into the default registry")
	}
}

func TestNewRegistry_RejectsInvalidOverrides(t *testing.T) {
	if _, err := fields.NewRegistry(fields.Descriptor{Type: "Signature"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if _, err := fields.NewRegistry(fields.Descriptor{Type: element.TypeText}); err == nil {
		t.Fatalf("expected error for partial descriptor")
	}
}

func TestCheckAttributes_Violations(t *testing.T) {
	reg := fields.Default()
	cases := []struct {
		name   string
		attrs  element.Attributes
		fields []string
	}{
		{
			name:   "blank label",
			attrs:  element.TextAttributes{Label: "   "},
			fields: []string{"label"},
		},
		{
			name: "long texts",
			attrs: element.NumberAttributes{
				Label:       repeat("l", 51),
				HelperText:  repeat("h", 201),
				Placeholder: repeat("p", 51),
			},
			fields: []string{"label", "helperText", "placeholder"},
		},
		{
			name:   "textarea rows",
			attrs:  element.TextareaAttributes{Label: "Notes", Rows: 11},
			fields: []string{"rows"},
		},
		{
			name:   "spacer height",
			attrs:  element.SpacerAttributes{Height: 0},
			fields: []string{"height"},
		},
		{
			name:   "empty title",
			attrs:  element.TitleAttributes{},
			fields: []string{"title"},
		},
		{
			name:   "long paragraph",
			attrs:  element.ParagraphAttributes{Text: repeat("p", 501)},
			fields: []string{"text"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.CheckAttributes(tc.attrs)
			var attrErr *element.AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("expected AttributeError, got %v", err)
			}
			if diff := cmp.Diff(tc.fields, attrErr.Fields()); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckAttributes_NormalizesPayload(t *testing.T) {
	got, err := fields.Default().CheckAttributes(element.SelectAttributes{
		Label:   "  Plan ",
		Options: []string{" free ", "", "  ", "pro"},
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := element.SelectAttributes{Label: "Plan", Options: []string{"free", "pro"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckAttributes_BoundariesAccepted(t *testing.T) {
	reg := fields.Default()
	for _, attrs := range []element.Attributes{
		element.SpacerAttributes{Height: 1},
		element.SpacerAttributes{Height: 200},
		element.TextareaAttributes{Label: "x", Rows: 1},
		element.TextareaAttributes{Label: "x", Rows: 10},
		element.TextAttributes{Label: repeat("é", 50)},
	} {
		if _, err := reg.CheckAttributes(attrs); err != nil {
			t.Fatalf("%#v rejected: %v", attrs, err)
		}
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for range n {
		out = append(out, s...)
	}
	return string(out)
}
