package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/render"
	rendertemplate "github.com/goliatone/go-formdesigner/pkg/render/template"
	"github.com/goliatone/go-formdesigner/pkg/render/template/pongo"
)

// Name is the registry name of the renderer.
const Name = "html"

const pageTemplate = "page.tmpl"

type Option func(*config)

type config struct {
	templateFS    fs.FS
	templates     rendertemplate.TemplateRenderer
	registry      *fields.Registry
	icons         map[string]string
	stylesheetURL string
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// every template of the embedded bundle at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithRegistry sets the field registry used to resolve views.
func WithRegistry(reg *fields.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithIcons adds or replaces palette icons by name. Markup is restricted to
// inline SVG.
func WithIcons(icons map[string]string) Option {
	return func(cfg *config) {
		cfg.icons = icons
	}
}

// WithStylesheetURL links an external stylesheet instead of inlining the
// bundled one.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = url
	}
}

// Renderer renders every form surface as a standalone HTML page.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	registry      *fields.Registry
	icons         map[string]string
	stylesheet    string
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = fields.Default()
	}

	templates := cfg.templates
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		templates = engine
	}
	if err := templates.RegisterFilter("sanitize", func(input any, _ any) (any, error) {
		return rendertemplate.Safe(SanitizeText(fmt.Sprint(input))), nil
	}); err != nil {
		return nil, fmt.Errorf("html renderer: register sanitize filter: %w", err)
	}

	r := &Renderer{
		templates:     templates,
		registry:      cfg.registry,
		icons:         iconSet(cfg.icons),
		stylesheetURL: cfg.stylesheetURL,
	}
	if r.stylesheetURL == "" {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the page for opts.Mode.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Mode == "" {
		opts.Mode = render.ModePreview
	}

	data, err := r.page(form, opts)
	if err != nil {
		return nil, err
	}
	out, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render %s page: %w", opts.Mode, err)
	}
	return []byte(out), nil
}

type formData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type hiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// chromeText flattens the message catalogue into template-friendly names.
type chromeText struct {
	Submit          string `json:"submit"`
	Submitted       string `json:"submitted"`
	SubmittedDetail string `json:"submittedDetail"`
	DropHere        string `json:"dropHere"`
	PaletteLayout   string `json:"paletteLayout"`
	PaletteFields   string `json:"paletteFields"`
	Properties      string `json:"properties"`
	NoSelection     string `json:"noSelection"`
	FormErrors      string `json:"formErrors"`
}

func newChromeText(messages map[string]string) chromeText {
	return chromeText{
		Submit:          messages[render.MsgSubmit],
		Submitted:       messages[render.MsgSubmitted],
		SubmittedDetail: messages[render.MsgSubmittedDetail],
		DropHere:        messages[render.MsgDropHere],
		PaletteLayout:   messages[render.MsgPaletteLayout],
		PaletteFields:   messages[render.MsgPaletteFields],
		Properties:      messages[render.MsgProperties],
		NoSelection:     messages[render.MsgNoSelection],
		FormErrors:      messages[render.MsgFormErrors],
	}
}

type pageData struct {
	Lang          string         `json:"lang"`
	Mode          string         `json:"mode"`
	Form          formData       `json:"form"`
	Elements      []elementView  `json:"elements"`
	Layout        []paletteEntry `json:"layout,omitempty"`
	Inputs        []paletteEntry `json:"inputs,omitempty"`
	Text          chromeText     `json:"text"`
	Hidden        []hiddenField  `json:"hidden,omitempty"`
	Action        string         `json:"action,omitempty"`
	FormErrors    []string       `json:"formErrors,omitempty"`
	Submitted     bool           `json:"submitted"`
	SelectedID    string         `json:"selectedId,omitempty"`
	Stylesheet    string         `json:"stylesheet,omitempty"`
	StylesheetURL string         `json:"stylesheetUrl,omitempty"`
}

func (r *Renderer) page(form render.Form, opts render.RenderOptions) (pageData, error) {
	views, err := render.Views(r.registry, form, opts)
	if err != nil {
		return pageData{}, fmt.Errorf("html renderer: %w", err)
	}

	data := pageData{
		Lang:          opts.Locale,
		Mode:          string(opts.Mode),
		Form:          formData{ID: form.ID, Name: form.Name, Description: form.Description},
		Elements:      make([]elementView, 0, len(views)),
		Text:          newChromeText(render.Messages(opts)),
		SelectedID:    opts.SelectedID,
		Stylesheet:    r.stylesheet,
		StylesheetURL: r.stylesheetURL,
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	invalid := false
	for _, view := range views {
		ev := buildElementView(view, opts)
		invalid = invalid || ev.Invalid
		data.Elements = append(data.Elements, ev)
	}

	switch opts.Mode {
	case render.ModeDesigner:
		data.Layout, data.Inputs = buildPalette(r.registry, r.icons)
	case render.ModeSubmit:
		data.Action = opts.Action
		data.Submitted = opts.Submitted || (opts.Session != nil && opts.Session.State() == capture.StateSubmitted)
		hidden := render.MergeHiddenFields(opts.Hidden, render.Hidden(render.FormIDField, form.ID))
		for _, field := range render.SortedHiddenFields(hidden) {
			data.Hidden = append(data.Hidden, hiddenField{Name: field.Name, Value: field.Value})
		}
		data.FormErrors = opts.Errors.Form
		if invalid && len(data.FormErrors) == 0 {
			data.FormErrors = []string{data.Text.FormErrors}
		}
	}
	return data, nil
}
