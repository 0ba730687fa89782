package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func textDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeText,
		Palette: Palette{Label: "Text Field", Icon: "text-cursor-input"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeText,
				Attributes: element.TextAttributes{
					Label:       "Text field",
					HelperText:  "Helper text",
					Placeholder: "Value here...",
				},
			}
		},
		Validate: requiredValue,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.TextAttributes)
			if !ok {
				return mismatch(element.TypeText, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, a.Placeholder, true)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.TextAttributes](inst)
			return designerView(inst, ComponentField, fieldProps(ControlText, a.Label, a.HelperText, a.Placeholder, a.Required))
		},
		Input: func(inst element.Instance, state InputState) View {
			a := attrsOf[element.TextAttributes](inst)
			return inputView(inst, ComponentField, fieldProps(ControlText, a.Label, a.HelperText, a.Placeholder, a.Required), state, requiredValue)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.TextAttributes](inst)
			return propertiesView(inst, "Text Field",
				labelProperty(a.Label),
				placeholderProperty(a.Placeholder),
				helperTextProperty(a.HelperText),
				requiredProperty(a.Required),
			)
		},
	}
}
