package html_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/render"
	"github.com/goliatone/go-formdesigner/pkg/renderers/html"
)

func sampleForm() render.Form {
	return render.Form{
		ID:          "form-1",
		Name:        "Signup",
		Description: "Tell us about you",
		Elements: []element.Instance{
			{ID: "title", Type: element.TypeTitle, Attributes: element.TitleAttributes{Title: "Welcome"}},
			{ID: "intro", Type: element.TypeParagraph, Attributes: element.ParagraphAttributes{Text: "Read <b>this</b><script>alert(1)</script>"}},
			{ID: "name", Type: element.TypeText, Attributes: element.TextAttributes{Label: "Name", Required: true, Placeholder: "Jane"}},
			{ID: "plan", Type: element.TypeSelect, Attributes: element.SelectAttributes{Label: "Plan", Options: []string{"free", "pro"}}},
			{ID: "gap", Type: element.TypeSpacer, Attributes: element.SpacerAttributes{Height: 40}},
			{ID: "agree", Type: element.TypeCheckbox, Attributes: element.CheckboxAttributes{Label: "Agree", Required: true}},
		},
	}
}

func newRenderer(t *testing.T, opts ...html.Option) *html.Renderer {
	t.Helper()
	r, err := html.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderPage(t *testing.T, r *html.Renderer, form render.Form, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(context.Background(), form, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, page string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(page, fragment) {
			t.Fatalf("expected page to contain %q\n%s", fragment, page)
		}
	}
}

func assertNotContains(t *testing.T, page string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(page, fragment) {
			t.Fatalf("expected page not to contain %q\n%s", fragment, page)
		}
	}
}

func TestRenderer_Contract(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "html" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderer_DesignerShowsPaletteAndDropZones(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{
		Mode:       render.ModeDesigner,
		SelectedID: "name",
	})

	for _, typ := range element.Types() {
		assertContains(t, page, `data-palette-type="`+string(typ)+`"`)
	}
	assertContains(t, page,
		"Layout elements",
		"Form elements",
		`data-element-id="name"`,
		`data-drop-half="upper"`,
		`data-drop-half="lower"`,
		`fd-canvas-item fd-selected" data-element-id="name"`,
		"Title field",
		"<svg",
	)
}

func TestRenderer_DesignerEmptyCanvas(t *testing.T) {
	page := renderPage(t, newRenderer(t), render.Form{ID: "empty"}, render.RenderOptions{Mode: render.ModeDesigner})
	assertContains(t, page, "fd-canvas-empty", "Drop here")
}

func TestRenderer_PreviewIsReadOnly(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{Mode: render.ModePreview})
	assertContains(t, page,
		"<h1>Welcome</h1>",
		`id="fd-name" name="name" value="" placeholder="Jane" readonly`,
		`<option value="pro">pro</option>`,
		`style="height: 40px"`,
		"Tell us about you",
	)
	assertNotContains(t, page, "<form", `class="fd-caption"`)
}

func TestRenderer_SanitizesParagraphs(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{Mode: render.ModePreview})
	assertContains(t, page, "Read <b>this</b>")
	assertNotContains(t, page, "<script>", "alert(1)")
}

func TestRenderer_SubmitCarriesHiddenFieldsAndValues(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{
		Mode:   render.ModeSubmit,
		Action: "/submit/abc",
		Hidden: map[string]string{"_csrf": "tok"},
		Values: map[string]string{"name": "Ada <3", "plan": "pro", "agree": "true"},
	})
	assertContains(t, page,
		`action="/submit/abc"`,
		`<input type="hidden" name="_csrf" value="tok">`,
		`<input type="hidden" name="_form" value="form-1">`,
		`value="Ada &lt;3"`,
		`<option value="pro" selected>`,
		`name="agree" value="true" checked`,
		`<button type="submit" class="fd-submit-button">Submit</button>`,
	)
	assertNotContains(t, page, "readonly", `class="fd-form-errors"`)
}

func TestRenderer_SubmitShowsSessionErrors(t *testing.T) {
	form := sampleForm()
	session := capture.NewSession(form.ID, form.Elements, capture.RecorderFunc(func(context.Context, string, []byte) error {
		return errors.New("unused")
	}))
	if _, err := session.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	page := renderPage(t, newRenderer(t), form, render.RenderOptions{Mode: render.ModeSubmit, Session: session})
	assertContains(t, page,
		"Please check the form for errors",
		"This field is required",
		"This box must be checked",
		`data-generation="1"`,
		`aria-invalid="true"`,
	)
}

func TestRenderer_SubmitConfirmation(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{Mode: render.ModeSubmit, Submitted: true})
	assertContains(t, page, "Form submitted", "you can close this page now")
	assertNotContains(t, page, "<form")
}

func TestRenderer_PropertiesEditor(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{Mode: render.ModeProperties, SelectedID: "plan"})
	assertContains(t, page,
		"<h3>Select Field</h3>",
		`id="fd-plan-label" name="label" value="Plan"`,
		"free\npro</textarea>",
		`name="required" value="true">`,
	)

	empty := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{Mode: render.ModeProperties})
	assertContains(t, empty, "Select an element to edit its properties")
}

func TestRenderer_TranslatesChrome(t *testing.T) {
	page := renderPage(t, newRenderer(t), sampleForm(), render.RenderOptions{
		Mode:   render.ModeSubmit,
		Locale: "es",
		Translator: render.TranslatorFunc(func(_, key string, _ ...any) (string, error) {
			if key == render.MsgSubmit {
				return "Enviar", nil
			}
			return "", errors.New("missing")
		}),
	})
	assertContains(t, page, `<html lang="es">`, ">Enviar</button>")
}

func TestRenderer_StylesheetURL(t *testing.T) {
	page := renderPage(t, newRenderer(t, html.WithStylesheetURL("/assets/fd.css")), sampleForm(), render.RenderOptions{})
	assertContains(t, page, `<link rel="stylesheet" href="/assets/fd.css">`)
	assertNotContains(t, page, "<style>")
}

func TestRenderer_IconOverridesAreSanitized(t *testing.T) {
	r := newRenderer(t, html.WithIcons(map[string]string{
		"hash": `<svg viewBox="0 0 24 24" onload="alert(1)"><path d="M0 0"/></svg><script>x()</script>`,
	}))
	page := renderPage(t, r, render.Form{ID: "f"}, render.RenderOptions{Mode: render.ModeDesigner})
	assertNotContains(t, page, "onload", "<script>")
}

func TestRenderer_UnknownMode(t *testing.T) {
	if _, err := newRenderer(t).Render(context.Background(), sampleForm(), render.RenderOptions{Mode: "print"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, sampleForm(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSanitizeText(t *testing.T) {
	got := html.SanitizeText("  line one\n<a href=\"https://example.com\">link</a><img src=x onerror=y> ")
	if strings.Contains(got, "onerror") || !strings.Contains(got, "<br>") {
		t.Fatalf("unexpected sanitized output %q", got)
	}
	if !strings.Contains(got, `rel="nofollow noopener"`) && !strings.Contains(got, `rel="nofollow"`) {
		t.Fatalf("expected nofollow on links, got %q", got)
	}
}

func TestRender_EveryModeResolvesIncludes(t *testing.T) {
	form := render.Form{
		ID:       "f",
		Name:     "Layout",
		Elements: []element.Instance{{ID: "sep", Type: element.TypeSeparator, Attributes: element.SeparatorAttributes{}}},
	}
	for name, opts := range map[string][]html.Option{
		"embedded": nil,
		"dir":      {html.WithTemplatesDir("templates")},
	} {
		r := newRenderer(t, opts...)
		for _, mode := range []render.Mode{render.ModeDesigner, render.ModePreview, render.ModeSubmit, render.ModeProperties} {
			out, err := r.Render(context.Background(), form, render.RenderOptions{Mode: mode, SelectedID: "sep"})
			if err != nil {
				t.Fatalf("%s/%s: %v", name, mode, err)
			}
			if !strings.Contains(string(out), "</html>") {
				t.Fatalf("%s/%s: incomplete page\n%s", name, mode, out)
			}
		}
	}
}
