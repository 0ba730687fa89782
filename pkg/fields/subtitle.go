package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func subtitleDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeSubtitle,
		Palette: Palette{Label: "Subtitle Field", Icon: "heading-2"},
		Construct: func(id string) element.Instance {
			return element.Instance{
				ID:         id,
				Type:       element.TypeSubtitle,
				Attributes: element.SubtitleAttributes{Subtitle: "Subtitle field"},
			}
		},
		Validate: alwaysValid,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.SubtitleAttributes)
			if !ok {
				return mismatch(element.TypeSubtitle, attrs)
			}
			var c checker
			c.required("subtitle", "Subtitle", a.Subtitle, MaxLabelLength)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.SubtitleAttributes](inst)
			return designerView(inst, ComponentHeading, map[string]any{
				"level":   2,
				"caption": "Subtitle field",
				"text":    a.Subtitle,
			})
		},
		Input: func(inst element.Instance, _ InputState) View {
			a := attrsOf[element.SubtitleAttributes](inst)
			return staticView(inst, ComponentHeading, map[string]any{"level": 2, "text": a.Subtitle})
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.SubtitleAttributes](inst)
			return propertiesView(inst, "Subtitle Field", PropertyField{
				Name: "subtitle", Label: "Subtitle", Kind: PropertyText, Value: a.Subtitle,
			})
		},
	}
}
