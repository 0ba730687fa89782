package fields

import (
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// Component names shared by the HTML and TUI renderers.
const (
	ComponentHeading    = "heading"
	ComponentParagraph  = "paragraph"
	ComponentSeparator  = "separator"
	ComponentSpacer     = "spacer"
	ComponentField      = "field"
	ComponentCheckbox   = "checkbox"
	ComponentProperties = "properties"
)

// Control kinds carried in the "control" prop of field views.
const (
	ControlText     = "text"
	ControlNumber   = "number"
	ControlTextarea = "textarea"
	ControlDate     = "date"
	ControlSelect   = "select"
)

func alwaysValid(element.Instance, string) bool { return true }

// requiredValue rejects blank values for required inputs.
func requiredValue(inst element.Instance, value string) bool {
	if required, ok := element.Required(inst.Attributes); ok && required {
		return strings.TrimSpace(value) != ""
	}
	return true
}

// requiredChecked accepts only the literal "true" for required checkboxes.
func requiredChecked(inst element.Instance, value string) bool {
	if required, ok := element.Required(inst.Attributes); ok && required {
		return value == "true"
	}
	return true
}

func designerView(inst element.Instance, component string, props map[string]any) View {
	return View{
		Surface:   SurfaceDesigner,
		Component: component,
		ElementID: inst.ID,
		Type:      inst.Type,
		Props:     props,
	}
}

// inputView wires the session callback into the view. The returned Submit
// records the value first and then reports its validity.
func inputView(inst element.Instance, component string, props map[string]any, state InputState, validate func(element.Instance, string) bool) View {
	view := View{
		Surface:    SurfaceInput,
		Component:  component,
		ElementID:  inst.ID,
		Type:       inst.Type,
		Props:      props,
		Value:      state.Value,
		Invalid:    state.Invalid,
		Generation: state.Generation,
		ReadOnly:   state.Submit == nil,
	}
	if state.Submit != nil {
		submit := state.Submit
		id := inst.ID
		view.Submit = func(value string) bool {
			submit(id, value)
			return validate(inst, value)
		}
	}
	return view
}

func propertiesView(inst element.Instance, title string, fields ...PropertyField) View {
	return View{
		Surface:   SurfaceProperties,
		Component: ComponentProperties,
		ElementID: inst.ID,
		Type:      inst.Type,
		Props: map[string]any{
			"title":  title,
			"fields": fields,
		},
	}
}

func fieldProps(control, label, helperText, placeholder string, required bool) map[string]any {
	return map[string]any{
		"control":     control,
		"label":       label,
		"helperText":  helperText,
		"placeholder": placeholder,
		"required":    required,
	}
}

func labelProperty(value string) PropertyField {
	return PropertyField{Name: "label", Label: "Label", Kind: PropertyText, Value: value,
		Description: "The label of the field. It will be displayed above the field"}
}

func helperTextProperty(value string) PropertyField {
	return PropertyField{Name: "helperText", Label: "Helper text", Kind: PropertyText, Value: value,
		Description: "Add a little description to the field. It will be displayed below the field"}
}

func placeholderProperty(value string) PropertyField {
	return PropertyField{Name: "placeholder", Label: "Placeholder", Kind: PropertyText, Value: value,
		Description: "The placeholder of the field"}
}

func requiredProperty(value bool) PropertyField {
	return PropertyField{Name: "required", Label: "Required", Kind: PropertySwitch, Value: value,
		Description: "Submission is rejected while a required field is empty"}
}

// staticView renders layout elements on the input surface; they collect no
// value and expose no Submit.
func staticView(inst element.Instance, component string, props map[string]any) View {
	return View{
		Surface:   SurfaceInput,
		Component: component,
		ElementID: inst.ID,
		Type:      inst.Type,
		Props:     props,
		ReadOnly:  true,
	}
}

// attrsOf returns the typed payload of inst. A payload of another type is a
// contract violation and panics.
func attrsOf[A element.Attributes](inst element.Instance) A {
	attrs, ok := inst.Attributes.(A)
	if !ok {
		var zero A
		panic("fields: instance " + inst.ID + " of type " + string(inst.Type) +
			" does not carry " + string(zero.Type()) + " attributes")
	}
	return attrs
}
