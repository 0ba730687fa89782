package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func titleDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeTitle,
		Palette: Palette{Label: "Title Field", Icon: "heading-1"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:         id,
				Type:       element.TypeTitle,
				Attributes: element.TitleAttributes{Title: "Title field"},
			}
		},
		Validate: alwaysValid,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.TitleAttributes)
			if !ok {
				return mismatch(element.TypeTitle, attrs)
			}
			var c checker
			c.required("title", "Title", a.Title, MaxLabelLength)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.TitleAttributes](inst)
			return designerView(inst, ComponentHeading, map[string]any{
				"level":   1,
				"caption": "Title field",
				"text":    a.Title,
			})
		},
		Input: func(inst element.Instance, _ InputState) View {
			a := attrsOf[element.TitleAttributes](inst)
			return staticView(inst, ComponentHeading, map[string]any{"level": 1, "text": a.Title})
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.TitleAttributes](inst)
			return propertiesView(inst, "Title Field", PropertyField{
				Name: "title", Label: "Title", Kind: PropertyText, Value: a.Title,
			})
		},
	}
}
