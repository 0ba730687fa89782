package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func numberDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeNumber,
		Palette: Palette{Label: "Number field", Icon: "hash"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeNumber,
				Attributes: element.NumberAttributes{
					Label:       "Number field",
					HelperText:  "Helper text",
					Placeholder: "0",
				},
			}
		},
		Validate: requiredValue,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.NumberAttributes)
			if !ok {
				return mismatch(element.TypeNumber, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, a.Placeholder, true)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.NumberAttributes](inst)
			return designerView(inst, ComponentField, fieldProps(ControlNumber, a.Label, a.HelperText, a.Placeholder, a.Required))
		},
		Input: func(inst element.Instance, state InputState) View {
			a := attrsOf[element.NumberAttributes](inst)
			return inputView(inst, ComponentField, fieldProps(ControlNumber, a.Label, a.HelperText, a.Placeholder, a.Required), state, requiredValue)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.NumberAttributes](inst)
			return propertiesView(inst, "Number Field",
				labelProperty(a.Label),
				placeholderProperty(a.Placeholder),
				helperTextProperty(a.HelperText),
				requiredProperty(a.Required),
			)
		},
	}
}
