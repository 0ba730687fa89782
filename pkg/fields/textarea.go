package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func textareaDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeTextarea,
		Palette: Palette{Label: "Textarea Field", Icon: "text"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:   id,
				Type: element.TypeTextarea,
				Attributes: element.TextareaAttributes{
					Label:       "Textarea",
					HelperText:  "Helper text",
					Placeholder: "Value here...",
					Rows:        3,
				},
			}
		},
		Validate: requiredValue,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.TextareaAttributes)
			if !ok {
				return mismatch(element.TypeTextarea, attrs)
			}
			var c checker
			c.inputText(a.Label, a.HelperText, a.Placeholder, true)
			c.between("rows", "Rows", a.Rows, MinTextareaRows, MaxTextareaRows)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.TextareaAttributes](inst)
			props := fieldProps(ControlTextarea, a.Label, a.HelperText, a.Placeholder, a.Required)
			props["rows"] = a.Rows
			return designerView(inst, ComponentField, props)
		},
		Input: func(inst element.Instance, state InputState) View {
			a := attrsOf[element.TextareaAttributes](inst)
			props := fieldProps(ControlTextarea, a.Label, a.HelperText, a.Placeholder, a.Required)
			props["rows"] = a.Rows
			return inputView(inst, ComponentField, props, state, requiredValue)
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.TextareaAttributes](inst)
			return propertiesView(inst, "Textarea Field",
				labelProperty(a.Label),
				placeholderProperty(a.Placeholder),
				helperTextProperty(a.HelperText),
				PropertyField{Name: "rows", Label: "Rows", Kind: PropertyNumber, Value: a.Rows},
				requiredProperty(a.Required),
			)
		},
	}
}
