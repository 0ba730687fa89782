package fields

import (
	"slices"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

func selectDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeSelect,
		Palette: Palette{Label: "Select Field", Icon: "list-checks"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeSelect,
				Attributes: element.SelectAttributes{
					Label:       "Select field",
					HelperText:  "Helper text",
					Placeholder: "Value here...",
					Options:     []string{},
				},
			}
		},
		Validate: requiredValue,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.SelectAttributes)
			if !ok {
				return mismatch(element.TypeSelect, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, a.Placeholder, true)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			return designerView(inst, ComponentField, selectProps(attrsOf[element.SelectAttributes](inst)))
		},
		Input: func(inst element.Instance, state InputState) View {
			return inputView(inst, ComponentField, selectProps(attrsOf[element.SelectAttributes](inst)), state, requiredValue)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.SelectAttributes](inst)
			return propertiesView(inst, "Select Field",
				labelProperty(a.Label),
				placeholderProperty(a.Placeholder),
				helperTextProperty(a.HelperText),
				PropertyField{Name: "options", Label: "Options", Kind: PropertyOptions, Value: slices.Clone(a.Options)},
				requiredProperty(a.Required),
			)
		},
	}
}

func selectProps(a element.SelectAttributes) map[string]any {
	props := fieldProps(ControlSelect, a.Label, a.HelperText, a.Placeholder, a.Required)
	props["options"] = slices.Clone(a.Options)
	return props
}
