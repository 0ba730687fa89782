package html

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

// elementView is the template-facing shape of a fields.View. Numbers are
// pre-formatted because the engine compares JSON numbers as floats.
type elementView struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Component   string   `json:"component"`
	Surface     string   `json:"surface"`
	ControlID   string   `json:"controlId"`
	Control     string   `json:"control,omitempty"`
	Label       string   `json:"label,omitempty"`
	HelperText  string   `json:"helperText,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Text        string   `json:"text,omitempty"`
	HTML        string   `json:"html,omitempty"`
	Caption     string   `json:"caption,omitempty"`
	HeadingTag  string   `json:"headingTag,omitempty"`
	Height      string   `json:"height,omitempty"`
	Rows        string   `json:"rows,omitempty"`
	Options     []string `json:"options,omitempty"`
	Value       string   `json:"value"`
	Checked     bool     `json:"checked"`
	Invalid     bool     `json:"invalid"`
	Generation  string   `json:"generation"`
	ReadOnly    bool     `json:"readOnly"`
	Selected    bool     `json:"selected"`
	Errors      []string `json:"errors,omitempty"`

	Title  string         `json:"title,omitempty"`
	Fields []propertyView `json:"fields,omitempty"`
}

type propertyView struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	InputID     string   `json:"inputId"`
	Value       string   `json:"value"`
	Checked     bool     `json:"checked"`
	Options     []string `json:"options,omitempty"`
	OptionsText string   `json:"optionsText,omitempty"`
	Description string   `json:"description,omitempty"`
}

type paletteEntry struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func controlID(id string) string {
	return "fd-" + id
}

func buildElementView(view fields.View, opts render.RenderOptions) elementView {
	out := elementView{
		ID:          view.ElementID,
		Type:        string(view.Type),
		Component:   view.Component,
		Surface:     string(view.Surface),
		ControlID:   controlID(view.ElementID),
		Control:     propString(view.Props, "control"),
		Label:       propString(view.Props, "label"),
		HelperText:  propString(view.Props, "helperText"),
		Placeholder: propString(view.Props, "placeholder"),
		Required:    propBool(view.Props, "required"),
		Text:        propString(view.Props, "text"),
		Caption:     propString(view.Props, "caption"),
		Options:     propStrings(view.Props, "options"),
		Value:       view.Value,
		Checked:     propBool(view.Props, "checked"),
		Invalid:     view.Invalid,
		Generation:  strconv.FormatUint(view.Generation, 10),
		ReadOnly:    view.ReadOnly,
		Selected:    opts.SelectedID != "" && opts.SelectedID == view.ElementID,
		Errors:      opts.Errors.Fields[view.ElementID],
	}

	switch view.Component {
	case fields.ComponentHeading:
		out.HeadingTag = "h" + propNumber(view.Props, "level", 1)
	case fields.ComponentParagraph:
		out.HTML = SanitizeText(out.Text)
	case fields.ComponentSpacer:
		out.Height = propNumber(view.Props, "height", 0)
	case fields.ComponentField:
		if view.Props["rows"] != nil {
			out.Rows = propNumber(view.Props, "rows", 3)
		}
	case fields.ComponentProperties:
		out.Title = propString(view.Props, "title")
		if list, ok := view.Props["fields"].([]fields.PropertyField); ok {
			out.Fields = make([]propertyView, 0, len(list))
			for _, field := range list {
				out.Fields = append(out.Fields, buildPropertyView(view.ElementID, field))
			}
		}
	}

	if out.Invalid && len(out.Errors) == 0 {
		out.Errors = []string{invalidMessage(view, opts)}
	}
	return out
}

func invalidMessage(view fields.View, opts render.RenderOptions) string {
	if view.Type == element.TypeCheckbox {
		return render.Translate(opts, render.MsgMustCheck)
	}
	return render.Translate(opts, render.MsgRequired)
}

func buildPropertyView(elementID string, field fields.PropertyField) propertyView {
	out := propertyView{
		Name:        field.Name,
		Label:       field.Label,
		Kind:        field.Kind,
		InputID:     controlID(elementID) + "-" + field.Name,
		Description: field.Description,
	}
	switch v := field.Value.(type) {
	case bool:
		out.Checked = v
		out.Value = strconv.FormatBool(v)
	case []string:
		out.Options = v
		for i, option := range v {
			if i > 0 {
				out.OptionsText += "\n"
			}
			out.OptionsText += option
		}
	case nil:
	default:
		out.Value = fmt.Sprint(v)
	}
	return out
}

func buildPalette(reg *fields.Registry, icons map[string]string) (layout, inputs []paletteEntry) {
	for _, entry := range reg.Palette() {
		item := paletteEntry{
			Type:  string(entry.Type),
			Label: entry.Label,
			Icon:  icons[entry.Icon],
		}
		if entry.Type.IsInput() {
			inputs = append(inputs, item)
		} else {
			layout = append(layout, item)
		}
	}
	return layout, inputs
}

func propString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func propBool(props map[string]any, key string) bool {
	v, _ := props[key].(bool)
	return v
}

func propStrings(props map[string]any, key string) []string {
	v, _ := props[key].([]string)
	return v
}

func propNumber(props map[string]any, key string, fallback int) string {
	switch v := props[key].(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strconv.Itoa(fallback)
	}
}
