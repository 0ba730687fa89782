package export

import (
	"github.com/invopop/jsonschema"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// attributeSamples holds one zero payload per type for reflection.
var attributeSamples = map[element.Type]element.Attributes{
	element.TypeTitle:     element.TitleAttributes{},
	element.TypeSubtitle:  element.SubtitleAttributes{},
	element.TypeParagraph: element.ParagraphAttributes{},
	element.TypeSeparator: element.SeparatorAttributes{},
	element.TypeSpacer:    element.SpacerAttributes{},
	element.TypeText:      element.TextAttributes{},
	element.TypeNumber:    element.NumberAttributes{},
	element.TypeTextarea:  element.TextareaAttributes{},
	element.TypeDate:      element.DateAttributes{},
	element.TypeSelect:    element.SelectAttributes{},
	element.TypeCheckbox:  element.CheckboxAttributes{},
}

// ContentSchema describes the persisted element list: an array whose items
// are one of the eleven typed instances.
func ContentSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	variants := make([]*jsonschema.Schema, 0, len(attributeSamples))
	for _, typ := range element.Types() {
		attrs := reflector.Reflect(attributeSamples[typ])
		attrs.Version = ""
		attrs.ID = ""

		props := jsonschema.NewProperties()
		props.Set("id", &jsonschema.Schema{Type: "string", MinLength: uintPtr(1)})
		props.Set("type", &jsonschema.Schema{Type: "string", Const: string(typ)})
		props.Set("extraAttributes", attrs)

		variants = append(variants, &jsonschema.Schema{
			Title:      string(typ),
			Type:       "object",
			Properties: props,
			Required:   []string{"id", "type"},
		})
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Form content",
		Description: "Ordered list of form elements.",
		Type:        "array",
		Items:       &jsonschema.Schema{OneOf: variants},
	}
}

// SubmissionSchema describes the payload recorded for a submission of a form
// with the given elements. Only input elements appear; every value is a
// string.
func SubmissionSchema(title string, elements []element.Instance) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	var required []string

	for _, inst := range elements {
		if !inst.Type.IsInput() {
			continue
		}
		prop := &jsonschema.Schema{
			Type:  "string",
			Title: element.Label(inst.Attributes),
		}
		isRequired, _ := element.Required(inst.Attributes)

		switch a := inst.Attributes.(type) {
		case element.TextAttributes:
			prop.Description = a.HelperText
		case element.NumberAttributes:
			prop.Description = a.HelperText
			prop.Pattern = numberPattern
		case element.TextareaAttributes:
			prop.Description = a.HelperText
		case element.DateAttributes:
			prop.Description = a.HelperText
			prop.Format = "date"
		case element.SelectAttributes:
			prop.Description = a.HelperText
			prop.Enum = selectEnum(a.Options, isRequired)
		case element.CheckboxAttributes:
			prop.Description = a.HelperText
			if isRequired {
				prop.Enum = []any{"true"}
			} else {
				prop.Enum = []any{"true", "false"}
			}
		}
		if isRequired {
			required = append(required, inst.ID)
			if prop.Enum == nil {
				prop.MinLength = uintPtr(1)
				if prop.Pattern == "" {
					prop.Pattern = nonBlankPattern
				}
			}
		}
		props.Set(inst.ID, prop)
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                title,
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// numberPattern accepts the empty string and decimal numbers.
const numberPattern = `^(-?\d+(\.\d+)?)?$`

// nonBlankPattern rejects values made only of whitespace, as the required
// check on submit does.
const nonBlankPattern = `\S`

func selectEnum(options []string, required bool) []any {
	out := make([]any, 0, len(options)+1)
	if !required {
		out = append(out, "")
	}
	for _, option := range options {
		out = append(out, option)
	}
	return out
}

func uintPtr(v uint64) *uint64 {
	return &v
}
