package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func paragraphDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeParagraph,
		Palette: Palette{Label: "Paragraph Field", Icon: "pilcrow"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:         id,
				Type:       element.TypeParagraph,
				Attributes: element.ParagraphAttributes{Text: "Text here"},
			}
		},
		Validate: alwaysValid,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.ParagraphAttributes)
			if !ok {
				return mismatch(element.TypeParagraph, attrs)
			}
			var c checker
			c.required("text", "Paragraph", a.Text, MaxParagraphLength)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.ParagraphAttributes](inst)
			return designerView(inst, ComponentParagraph, map[string]any{
				"caption": "Paragraph field",
				"text":    a.Text,
			})
		},
		Input: func(inst element.Instance, _ InputState) View {
			a := attrsOf[element.ParagraphAttributes](inst)
			return staticView(inst, ComponentParagraph, map[string]any{"text": a.Text})
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.ParagraphAttributes](inst)
			return propertiesView(inst, "Paragraph Field", PropertyField{
				Name: "text", Label: "Text", Kind: PropertyText, Value: a.Text,
			})
		},
	}
}
