package forms_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/forms"
)

func TestBuildTable(t *testing.T) {
	elements := []element.Instance{
		{ID: "h", Type: element.TypeSubtitle, Attributes: element.SubtitleAttributes{Subtitle: "About"}},
		{ID: "age", Type: element.TypeNumber, Attributes: element.NumberAttributes{Label: "Age", Required: true}},
		{ID: "day", Type: element.TypeDate, Attributes: element.DateAttributes{Label: "Day"}},
		{ID: "ok", Type: element.TypeCheckbox, Attributes: element.CheckboxAttributes{Label: "OK"}},
	}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	subs := []forms.Submission{
		{ID: "s1", FormID: "f", CreatedAt: at, Content: `{"age":"42","day":"2024-02-29T00:00:00.000Z","ok":"false","gone":"x"}`},
		{ID: "s2", FormID: "f", CreatedAt: at, Content: `{"day":"not a date"}`},
	}

	table, err := forms.BuildTable(elements, subs)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	want := forms.Table{
		Columns: []forms.Column{
			{ID: "age", Label: "Age", Required: true, Type: element.TypeNumber},
			{ID: "day", Label: "Day", Type: element.TypeDate},
			{ID: "ok", Label: "OK", Type: element.TypeCheckbox},
		},
		Rows: []forms.Row{
			{SubmittedAt: at, Cells: map[string]forms.Cell{
				"age": {Value: "42"},
				"day": {Value: "29/02/2024"},
				"ok":  {Value: "false"},
			}},
			{SubmittedAt: at, Cells: map[string]forms.Cell{
				"day": {Value: "not a date"},
			}},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_RejectsCorruptPayload(t *testing.T) {
	_, err := forms.BuildTable(nil, []forms.Submission{{ID: "bad", Content: "nope"}})
	if err == nil {
		t.Fatalf("expected error")
	}
}
