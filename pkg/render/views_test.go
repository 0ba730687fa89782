package render_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
	"github.com/goliatone/go-formdesigner/pkg/render"
)

func sampleForm() render.Form {
	return render.Form{
		ID:   "f1",
		Name: "Signup",
		Elements: []element.Instance{
			{ID: "t", Type: element.TypeTitle, Attributes: element.TitleAttributes{Title: "Signup"}},
			{ID: "name", Type: element.TypeText, Attributes: element.TextAttributes{Label: "Name", Required: true}},
		},
	}
}

func TestViews_Modes(t *testing.T) {
	form := sampleForm()

	designer, err := render.Views(nil, form, render.RenderOptions{Mode: render.ModeDesigner})
	if err != nil || len(designer) != 2 || designer[1].Surface != fields.SurfaceDesigner {
		t.Fatalf("designer views: %+v %v", designer, err)
	}

	preview, err := render.Views(nil, form, render.RenderOptions{Mode: render.ModePreview})
	if err != nil || !preview[1].ReadOnly {
		t.Fatalf("preview views must be read-only: %+v %v", preview, err)
	}

	submit, err := render.Views(nil, form, render.RenderOptions{
		Mode:       render.ModeSubmit,
		Values:     map[string]string{"name": "Ada"},
		Invalid:    map[string]bool{"name": true},
		Generation: 2,
	})
	if err != nil || submit[1].Value != "Ada" || !submit[1].Invalid || submit[1].Generation != 2 || submit[1].ReadOnly {
		t.Fatalf("submit views: %+v %v", submit, err)
	}

	props, err := render.Views(nil, form, render.RenderOptions{Mode: render.ModeProperties, SelectedID: "name"})
	if err != nil || len(props) != 1 || props[0].Surface != fields.SurfaceProperties {
		t.Fatalf("properties views: %+v %v", props, err)
	}
	none, err := render.Views(nil, form, render.RenderOptions{Mode: render.ModeProperties})
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no properties without selection: %+v %v", none, err)
	}

	if _, err := render.Views(nil, form, render.RenderOptions{Mode: "print"}); err == nil {
		t.Fatalf("expected unknown mode error")
	}
}

func TestViews_SubmitUsesSession(t *testing.T) {
	form := sampleForm()
	session := capture.NewSession(form.ID, form.Elements, capture.RecorderFunc(func(context.Context, string, []byte) error { return nil }))
	session.SubmitValue("name", "Grace")

	views, err := render.Views(nil, form, render.RenderOptions{Mode: render.ModeSubmit, Session: session, Values: map[string]string{"name": "ignored"}})
	if err != nil {
		t.Fatalf("views: %v", err)
	}
	if views[1].Value != "Grace" || views[1].Submit == nil {
		t.Fatalf("session state not used: %+v", views[1])
	}
}
