package forms

import (
	"fmt"
	"time"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/element"
)

// DateLayout formats date cells in the submissions table.
const DateLayout = "02/01/2006"

// Column is one input element of the form.
type Column struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Required bool         `json:"required"`
	Type     element.Type `json:"type"`
}

// Cell is one rendered value. Checkbox cells set Checked and leave Value as
// the raw "true"/"false".
type Cell struct {
	Value   string `json:"value"`
	Checked bool   `json:"checked,omitempty"`
}

// Row is one submission.
type Row struct {
	SubmittedAt time.Time       `json:"submittedAt"`
	Cells       map[string]Cell `json:"cells"`
}

// Table lists submissions against the input columns of a form.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// BuildTable lays out submissions by the input elements of content. Layout
// elements get no column; values for ids no longer in the form are dropped.
func BuildTable(elements []element.Instance, submissions []Submission) (Table, error) {
	table := Table{Columns: []Column{}, Rows: make([]Row, 0, len(submissions))}
	for _, inst := range elements {
		if !inst.Type.IsInput() {
			continue
		}
		required, _ := element.Required(inst.Attributes)
		table.Columns = append(table.Columns, Column{
			ID:       inst.ID,
			Label:    element.Label(inst.Attributes),
			Required: required,
			Type:     inst.Type,
		})
	}

	for _, sub := range submissions {
		payload, err := capture.DecodePayload([]byte(sub.Content))
		if err != nil {
			return Table{}, fmt.Errorf("forms: submission %s: %w", sub.ID, err)
		}
		row := Row{SubmittedAt: sub.CreatedAt, Cells: make(map[string]Cell, len(table.Columns))}
		for _, col := range table.Columns {
			value, ok := payload[col.ID]
			if !ok {
				continue
			}
			row.Cells[col.ID] = formatCell(col.Type, value)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func formatCell(t element.Type, value string) Cell {
	switch t {
	case element.TypeCheckbox:
		return Cell{Value: value, Checked: value == "true"}
	case element.TypeDate:
		for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
			if parsed, err := time.Parse(layout, value); err == nil {
				return Cell{Value: parsed.Format(DateLayout)}
			}
		}
		return Cell{Value: value}
	default:
		return Cell{Value: value}
	}
}
