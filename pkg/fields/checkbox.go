package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func checkboxDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeCheckbox,
		Palette: Palette{Label: "Checkbox Field", Icon: "square-check"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeCheckbox,
				Attributes: element.CheckboxAttributes{
					Label:      "Checkbox field",
					HelperText: "Helper text",
				},
			}
		},
		Validate: requiredChecked,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.CheckboxAttributes)
			if !ok {
				return mismatch(element.TypeCheckbox, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, "", false)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.CheckboxAttributes](inst)
			return designerView(inst, ComponentCheckbox, checkboxProps(a))
		},
		Input: func(inst element.Instance, state InputState) View {
			a := attrsOf[element.CheckboxAttributes](inst)
			props := checkboxProps(a)
			props["checked"] = state.Value == "true"
			return inputView(inst, ComponentCheckbox, props, state, requiredChecked)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.CheckboxAttributes](inst)
			return propertiesView(inst, "Checkbox Field",
				labelProperty(a.Label),
				helperTextProperty(a.HelperText),
				requiredProperty(a.Required),
			)
		},
	}
}

func checkboxProps(a element.CheckboxAttributes) map[string]any {
	return map[string]any{
		"label":      a.Label,
		"helperText": a.HelperText,
		"required":   a.Required,
	}
}
