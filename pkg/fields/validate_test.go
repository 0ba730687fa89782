package fields_test

import (
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

func TestValidate_CheckboxMatrix(t *testing.T) {
	reg := fields.Default()
	cases := []struct {
		required bool
		value    string
		want     bool
	}{
		{required: true, value: "true", want: true},
		{required: true, value: "false", want: false},
		{required: true, value: "", want: false},
		{required: true, value: "TRUE", want: false},
		{required: false, value: "false", want: true},
		{required: false, value: "", want: true},
		{required: false, value: "true", want: true},
	}
	for _, tc := range cases {
		inst := element.Instance{
			ID:         "cb",
			Type:       element.TypeCheckbox,
			Attributes: element.CheckboxAttributes{Label: "Agree", Required: tc.required},
		}
		if got := reg.Validate(inst, tc.value); got != tc.want {
			t.Fatalf("required=%v value=%q: expected %v, got %v", tc.required, tc.value, tc.want, got)
		}
	}
}

func TestValidate_TextLikeMatrix(t *testing.T) {
	reg := fields.Default()
	build := func(typ element.Type, required bool) element.Instance {
		inst := reg.Construct(typ, "f")
		switch a := inst.Attributes.(type) {
		case element.TextAttributes:
			a.Required = required
			inst.Attributes = a
		case element.NumberAttributes:
			a.Required = required
			inst.Attributes = a
		case element.TextareaAttributes:
			a.Required = required
			inst.Attributes = a
		case element.DateAttributes:
			a.Required = required
			inst.Attributes = a
		case element.SelectAttributes:
			a.Required = required
			inst.Attributes = a
		}
		return inst
	}

	types := []element.Type{
		element.TypeText, element.TypeNumber, element.TypeTextarea, element.TypeDate, element.TypeSelect,
	}
	for _, typ := range types {
		required := build(typ, true)
		optional := build(typ, false)

		if reg.Validate(required, "") {
			t.Fatalf("%s: required accepted empty value", typ)
		}
		if reg.Validate(required, "   ") {
			t.Fatalf("%s: required accepted blank value", typ)
		}
		if !reg.Validate(required, "x") {
			t.Fatalf("%s: required rejected a value", typ)
		}
		if !reg.Validate(optional, "") {
			t.Fatalf("%s: optional rejected empty value", typ)
		}
	}
}

func TestValidate_LayoutAlwaysValid(t *testing.T) {
	reg := fields.Default()
	for _, typ := range element.Types() {
		if typ.IsInput() {
			continue
		}
		inst := reg.Construct(typ, "l")
		for _, value := range []string{"", "anything", "false"} {
			if !reg.Validate(inst, value) {
				t.Fatalf("%s rejected %q", typ, value)
			}
		}
	}
}
