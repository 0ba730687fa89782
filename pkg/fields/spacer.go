package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func spacerDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeSpacer,
		Palette: Palette{Label: "Spacer field", Icon: "separator-vertical"},
		Construct: func(id string) element.Instance {
			return element.Instance{ID: id, Type: element.TypeSpacer, Attributes: element.SpacerAttributes{Height: 20}}
		},
		Validate: alwaysValid,
		Check: func(attrs element.Attributes) []element.Violation {
			a, ok := attrs.(element.SpacerAttributes)
			if !ok {
				return mismatch(element.TypeSpacer, attrs)
			}
			var c checker
			c.between("height", "Height", a.Height, MinSpacerHeight, MaxSpacerHeight)
			return c.violations
		},
		Designer: func(inst element.Instance) View {
			a := attrsOf[element.SpacerAttributes](inst)
			return designerView(inst, ComponentSpacer, map[string]any{
				"caption": "Spacer field",
				"height":  a.Height,
			})
		},
		Input: func(inst element.Instance, _ InputState) View {
			a := attrsOf[element.SpacerAttributes](inst)
			return staticView(inst, ComponentSpacer, map[string]any{"height": a.Height})
		},
		Properties: func(inst element.Instance) View {
			a := attrsOf[element.SpacerAttributes](inst)
			return propertiesView(inst, "Spacer Field", PropertyField{
				Name: "height", Label: "Height (px)", Kind: PropertyNumber, Value: a.Height,
			})
		},
	}
}
