package render

import (
	"fmt"

	"github.com/goliatone/go-formdesigner/pkg/fields"
)

// Views resolves the field views of form for the requested mode. Designer,
// preview and submit modes return one view per element in list order;
// properties mode returns the selection's editor, or nothing.
func Views(reg *fields.Registry, form Form, opts RenderOptions) ([]fields.View, error) {
	if reg == nil {
		reg = fields.Default()
	}
	switch opts.Mode {
	case ModeDesigner:
		views := make([]fields.View, 0, len(form.Elements))
		for _, inst := range form.Elements {
			views = append(views, reg.Designer(inst))
		}
		return views, nil
	case ModePreview, "":
		views := make([]fields.View, 0, len(form.Elements))
		for _, inst := range form.Elements {
			views = append(views, reg.Input(inst, fields.InputState{}))
		}
		return views, nil
	case ModeSubmit:
		if opts.Session != nil {
			return opts.Session.InputViews(), nil
		}
		views := make([]fields.View, 0, len(form.Elements))
		for _, inst := range form.Elements {
			view := reg.Input(inst, fields.InputState{
				Value:      opts.Values[inst.ID],
				Invalid:    opts.Invalid[inst.ID],
				Generation: opts.Generation,
			})
			// Values arrive with the next request rather than through Submit.
			if inst.Type.IsInput() {
				view.ReadOnly = false
			}
			views = append(views, view)
		}
		return views, nil
	case ModeProperties:
		for _, inst := range form.Elements {
			if inst.ID == opts.SelectedID {
				return []fields.View{reg.Properties(inst)}, nil
			}
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("render: unknown mode %q", opts.Mode)
	}
}
