package export_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/export"
	"github.com/goliatone/go-formdesigner/pkg/testsupport"
)

func sampleElements() []element.Instance {
	return []element.Instance{
		{ID: "title", Type: element.TypeTitle, Attributes: element.TitleAttributes{Title: "Signup"}},
		{ID: "name", Type: element.TypeText, Attributes: element.TextAttributes{Label: "Name", Required: true, HelperText: "Full name"}},
		{ID: "age", Type: element.TypeNumber, Attributes: element.NumberAttributes{Label: "Age"}},
		{ID: "plan", Type: element.TypeSelect, Attributes: element.SelectAttributes{Label: "Plan", Options: []string{"free", "pro"}, Required: true}},
		{ID: "born", Type: element.TypeDate, Attributes: element.DateAttributes{Label: "Born"}},
		{ID: "agree", Type: element.TypeCheckbox, Attributes: element.CheckboxAttributes{Label: "Agree", Required: true}},
	}
}

func TestContentSchema(t *testing.T) {
	schema := export.ContentSchema()
	if schema.Type != "array" || schema.Items == nil {
		t.Fatalf("expected array schema, got %+v", schema)
	}
	if got := len(schema.Items.OneOf); got != len(element.Types()) {
		t.Fatalf("expected %d variants, got %d", len(element.Types()), got)
	}

	var titles []string
	for _, variant := range schema.Items.OneOf {
		titles = append(titles, variant.Title)
	}
	var want []string
	for _, typ := range element.Types() {
		want = append(want, string(typ))
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("variant order mismatch (-want +got):\n%s", diff)
	}

	spacer := schema.Items.OneOf[4]
	attrs, ok := spacer.Properties.Get("extraAttributes")
	if !ok {
		t.Fatalf("spacer variant has no extraAttributes")
	}
	height, ok := attrs.Properties.Get("height")
	if !ok || height.Type != "integer" {
		t.Fatalf("expected integer height, got %+v", height)
	}

	if _, err := json.Marshal(schema); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

func TestSubmissionSchema(t *testing.T) {
	schema := export.SubmissionSchema("Signup", sampleElements())

	if diff := cmp.Diff([]string{"name", "plan", "agree"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if _, ok := schema.Properties.Get("title"); ok {
		t.Fatalf("layout elements must not appear in the payload schema")
	}

	name, _ := schema.Properties.Get("name")
	if name.Title != "Name" || name.Description != "Full name" || name.MinLength == nil || *name.MinLength != 1 {
		t.Fatalf("unexpected name schema %+v", name)
	}
	plan, _ := schema.Properties.Get("plan")
	if diff := cmp.Diff([]any{"free", "pro"}, plan.Enum); diff != "" {
		t.Fatalf("plan enum mismatch (-want +got):\n%s", diff)
	}
	born, _ := schema.Properties.Get("born")
	if born.Format != "date" {
		t.Fatalf("expected date format, got %q", born.Format)
	}
	agree, _ := schema.Properties.Get("agree")
	if diff := cmp.Diff([]any{"true"}, agree.Enum); diff != "" {
		t.Fatalf("agree enum mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAPI(t *testing.T) {
	doc, err := export.OpenAPI(context.Background(), export.Form{
		ID:       "form-1",
		Name:     "Signup",
		Elements: sampleElements(),
	}, export.OpenAPIOptions{ServerURL: "https://forms.example.com"})
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}

	item := doc.Paths.Find("/api/forms/{formID}/submissions")
	if item == nil || item.Post == nil {
		t.Fatalf("submission operation missing")
	}
	if item.Post.OperationID != "submit_form_1" {
		t.Fatalf("unexpected operation id %q", item.Post.OperationID)
	}

	payload := doc.Components.Schemas["Submission"].Value
	if diff := cmp.Diff([]string{"name", "plan", "agree"}, payload.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if _, ok := payload.Properties["age"]; !ok {
		t.Fatalf("expected age property")
	}
	if doc.Servers[0].URL != "https://forms.example.com" {
		t.Fatalf("unexpected servers %+v", doc.Servers)
	}

	if _, err := doc.MarshalJSON(); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

func TestOpenAPI_EmptyNameUsesID(t *testing.T) {
	doc, err := export.OpenAPI(context.Background(), export.Form{ID: "abc"}, export.OpenAPIOptions{})
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	if doc.Info.Title != "abc" || doc.Info.Version != "1.0.0" {
		t.Fatalf("unexpected info %+v", doc.Info)
	}
}

func TestOpenAPI_Fixture(t *testing.T) {
	elements := testsupport.LoadElements(t, "../../testdata/forms/signup.yaml")

	doc, err := export.OpenAPI(context.Background(), export.Form{ID: "signup", Name: "Conference signup", Elements: elements}, export.OpenAPIOptions{})
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	payload := doc.Components.Schemas["Submission"].Value
	if diff := cmp.Diff([]string{"name", "arrival", "track", "terms"}, payload.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := len(payload.Properties); got != 6 {
		t.Fatalf("expected one property per input, got %d", got)
	}
}

func requiredInputs() []element.Instance {
	return []element.Instance{
		{ID: "name", Type: element.TypeText, Attributes: element.TextAttributes{Label: "Name", Required: true}},
		{ID: "qty", Type: element.TypeNumber, Attributes: element.NumberAttributes{Label: "Quantity", Required: true}},
	}
}

func TestSubmissionSchema_RequiredRejectsBlank(t *testing.T) {
	schema := export.SubmissionSchema("Order", requiredInputs())

	name, _ := schema.Properties.Get("name")
	if name.Pattern != `\S` {
		t.Fatalf("expected non-blank pattern on required text, got %q", name.Pattern)
	}
	qty, _ := schema.Properties.Get("qty")
	if qty.Pattern != `^(-?\d+(\.\d+)?)?$` {
		t.Fatalf("number pattern must be kept, got %q", qty.Pattern)
	}
}

func TestOpenAPI_ValuesRefResolves(t *testing.T) {
	doc, err := export.OpenAPI(context.Background(), export.Form{ID: "order", Elements: requiredInputs()}, export.OpenAPIOptions{})
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}

	op := doc.Paths.Find("/api/forms/{formID}/submissions").Post
	body := op.RequestBody.Value.Content.Get("application/json").Schema.Value
	values := body.Properties["values"]
	if values.Ref != "#/components/schemas/Submission" {
		t.Fatalf("unexpected ref %q", values.Ref)
	}
	if values.Value == nil || values.Value != doc.Components.Schemas["Submission"].Value {
		t.Fatalf("values ref does not resolve to the Submission component")
	}

	name := values.Value.Properties["name"].Value
	if name.Pattern != `\S` || name.MinLength != 1 {
		t.Fatalf("unexpected name schema %+v", name)
	}
	if err := name.VisitJSON("   "); err == nil {
		t.Fatal("expected a blank value to fail the name schema")
	}
	if err := name.VisitJSON("Ada"); err != nil {
		t.Fatalf("expected Ada to pass: %v", err)
	}
}
