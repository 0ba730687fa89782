// Package tui collects form submissions in the terminal. Prompts are driven
// by the views of a capture.Session, so the same validation rules apply as in
// the HTML submission page.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

// Name is the registry name of the renderer.
const Name = "tui"

const noneOption = "(none)"

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	recorder     capture.Recorder
	registry     *fields.Registry
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		registry:     fields.Default(),
		theme:        Theme{ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for every input of form until the submission validates and
// is recorded, then returns the payload. When opts.Session is set it is used
// as-is; otherwise a session is created and pre-filled from opts.Values.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Mode != "" && opts.Mode != render.ModeSubmit {
		return nil, fmt.Errorf("tui: mode %q not supported", opts.Mode)
	}

	session := opts.Session
	if session == nil {
		recorder := r.recorder
		if recorder == nil {
			recorder = capture.RecorderFunc(func(context.Context, string, []byte) error { return nil })
		}
		session = capture.NewSession(form.ID, form.Elements, recorder, capture.WithRegistry(r.registry))
		for id, value := range opts.Values {
			session.SubmitValue(id, value)
		}
	}
	if !session.State().Editable() {
		return nil, ErrNotEditable
	}

	var pending map[string]bool
	for {
		if err := r.promptViews(ctx, session.InputViews(), pending, opts); err != nil {
			return nil, err
		}
		result, err := session.Submit(ctx)
		if err != nil {
			return nil, fmt.Errorf("tui: submit: %w", err)
		}
		if result.State == capture.StateSubmitted {
			return r.serialize(session.Elements(), result.Payload)
		}
		if err := r.errorLine(ctx, render.Translate(opts, render.MsgFormErrors)); err != nil {
			return nil, err
		}
		pending = make(map[string]bool, len(result.Invalid))
		for _, id := range result.Invalid {
			pending[id] = true
		}
	}
}

// promptViews walks views in order. A nil pending set prompts every input
// and prints layout elements; otherwise only the pending inputs are asked.
func (r *Renderer) promptViews(ctx context.Context, views []fields.View, pending map[string]bool, opts render.RenderOptions) error {
	for _, view := range views {
		switch view.Component {
		case fields.ComponentField, fields.ComponentCheckbox:
			if pending != nil && !pending[view.ElementID] {
				continue
			}
			if err := r.promptInput(ctx, view, opts); err != nil {
				return err
			}
		default:
			if pending != nil {
				continue
			}
			if line, ok := layoutLine(view); ok {
				if err := r.infoLine(ctx, line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *Renderer) promptInput(ctx context.Context, view fields.View, opts render.RenderOptions) error {
	if view.Submit == nil {
		return ErrNotEditable
	}
	for {
		value, problem, err := r.ask(ctx, view)
		if err != nil {
			return err
		}
		if problem != "" {
			if err := r.errorLine(ctx, problem); err != nil {
				return err
			}
			continue
		}
		if view.Submit(value) {
			return nil
		}
		key := render.MsgRequired
		if view.Component == fields.ComponentCheckbox {
			key = render.MsgMustCheck
		}
		if err := r.errorLine(ctx, render.Translate(opts, key)); err != nil {
			return err
		}
	}
}

// ask runs one prompt for view. problem is set when the answer has the wrong
// format for the control and must be asked again.
func (r *Renderer) ask(ctx context.Context, view fields.View) (value, problem string, err error) {
	label := stringProp(view.Props, "label")
	help := stringProp(view.Props, "helperText")
	if boolProp(view.Props, "required") {
		label += " *"
	}

	if view.Component == fields.ComponentCheckbox {
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: view.Value == "true", Help: help})
		if err != nil {
			return "", "", err
		}
		return strconv.FormatBool(checked), "", nil
	}

	switch stringProp(view.Props, "control") {
	case fields.ControlSelect:
		options, _ := view.Props["options"].([]string)
		if !boolProp(view.Props, "required") {
			options = append([]string{noneOption}, options...)
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: indexOf(options, view.Value),
			Help:         help,
		})
		if err != nil {
			return "", "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", "invalid selection", nil
		}
		if options[idx] == noneOption {
			return "", "", nil
		}
		return options[idx], "", nil
	case fields.ControlTextarea:
		value, err = r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: view.Value, Help: help})
		return value, "", err
	case fields.ControlNumber:
		value, err = r.driver.Input(ctx, InputConfig{Message: label, Default: view.Value, Help: help})
		if err != nil {
			return "", "", err
		}
		value = strings.TrimSpace(value)
		if value != "" {
			if _, perr := strconv.ParseFloat(value, 64); perr != nil {
				return "", "please enter a number", nil
			}
		}
		return value, "", nil
	case fields.ControlDate:
		value, err = r.driver.Input(ctx, InputConfig{Message: label + " (YYYY-MM-DD)", Default: view.Value, Help: help})
		if err != nil {
			return "", "", err
		}
		value = strings.TrimSpace(value)
		if value != "" {
			if _, perr := time.Parse(time.DateOnly, value); perr != nil {
				return "", "please enter a date as YYYY-MM-DD", nil
			}
		}
		return value, "", nil
	default:
		value, err = r.driver.Input(ctx, InputConfig{Message: label, Default: view.Value, Help: help})
		return value, "", err
	}
}

func layoutLine(view fields.View) (string, bool) {
	switch view.Component {
	case fields.ComponentHeading:
		return stringProp(view.Props, "text"), true
	case fields.ComponentParagraph:
		return stringProp(view.Props, "text"), true
	case fields.ComponentSeparator:
		return strings.Repeat("-", 40), true
	default:
		return "", false
	}
}

func (r *Renderer) infoLine(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) errorLine(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func (r *Renderer) serialize(elements []element.Instance, payload []byte) ([]byte, error) {
	if r.outputFormat != OutputFormatPrettyText {
		return payload, nil
	}
	values, err := capture.DecodePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("tui: decode payload: %w", err)
	}
	var b strings.Builder
	for _, inst := range elements {
		if !inst.Type.IsInput() {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", element.Label(inst.Attributes), values[inst.ID])
	}
	return []byte(b.String()), nil
}

func stringProp(props map[string]any, key string) string {
	v, _ := props[key].(string)
	return v
}

func boolProp(props map[string]any, key string) bool {
	v, _ := props[key].(bool)
	return v
}
