package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

func separatorDescriptor() Descriptor {
	return Descriptor{
		Type:    element.TypeSeparator,
		Palette: Palette{Label: "Separator Field", Icon: "separator-horizontal"},
		Construct: func(id string) element.Instance {
			return element.Instance{ID: id, Type: element.TypeSeparator, Attributes: element.SeparatorAttributes{}}
		},
		Validate: alwaysValid,
		Check: func(attrs element.Attributes) []element.Violation {
			if _, ok := attrs.(element.SeparatorAttributes); !ok {
				return mismatch(element.TypeSeparator, attrs)
			}
			return nil
		},
		Designer: func(inst element.Instance) View {
			return designerView(inst, ComponentSeparator, map[string]any{"caption": "Separator field"})
		},
		Input: func(inst element.Instance, _ InputState) View {
			return staticView(inst, ComponentSeparator, nil)
		},
		Properties: func(inst element.Instance) View {
			return propertiesView(inst, "Separator Field")
		},
	}
}
