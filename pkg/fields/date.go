package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func dateDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeDate,
		Palette: Palette{Label: "Date Field", Icon: "calendar"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeDate,
				Attributes: element.DateAttributes{
					Label:      "Date field",
					HelperText: "Pick a date",
				},
			}
		},
		Validate: requiredValue,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.DateAttributes)
			if !ok {
				return mismatch(element.TypeDate, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, "", false)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.DateAttributes](inst)
			return designerView(inst, ComponentField, fieldProps(ControlDate, a.Label, a.HelperText, "Pick a date", a.Required))
		},
		Input: func(inst element.Instance, state InputState) View {
			a := attrsOf[element.DateAttributes](inst)
			return inputView(inst, ComponentField, fieldProps(ControlDate, a.Label, a.HelperText, "Pick a date", a.Required), state, requiredValue)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.DateAttributes](inst)
			return propertiesView(inst, "Date Field",
				labelProperty(a.Label),
				helperTextProperty(a.HelperText),
				requiredProperty(a.Required),
			)
		},
	}
}
