package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/capture"
)

// Mode selects which surface of a form is rendered.
type Mode string

const (
	// ModeDesigner renders the canvas with palette and drop zones.
	ModeDesigner Mode = "designer"
	// ModePreview renders read-only live controls.
	ModePreview Mode = "preview"
	// ModeSubmit renders the interactive submission form.
	ModeSubmit Mode = "submit"
	// ModeProperties renders the attribute editor of the selection.
	ModeProperties Mode = "properties"
)

// ParseMode maps a name to a Mode. Empty selects ModePreview.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModePreview:
		return ModePreview, nil
	case ModeDesigner:
		return ModeDesigner, nil
	case ModeSubmit:
		return ModeSubmit, nil
	case ModeProperties:
		return ModeProperties, nil
	default:
		return "", fmt.Errorf("render: unknown mode %q", value)
	}
}

// RenderOptions carry per-request data that renderers use without touching
// the element list.
type RenderOptions struct {
	Mode Mode
	// Session, when set, supplies values, error flags and the generation for
	// ModeSubmit and takes precedence over Values/Invalid/Generation.
	Session *capture.Session
	// Values pre-populates controls keyed by element id.
	Values map[string]string
	// Invalid flags elements that failed the last validation run.
	Invalid map[string]bool
	// Generation is the validation run the flags belong to.
	Generation uint64
	// Errors carries messages keyed by element id plus form-level ones.
	Errors ErrorMapping
	// SelectedID is the element shown by ModeProperties and highlighted in
	// ModeDesigner.
	SelectedID string
	// Action is the submit target of ModeSubmit forms.
	Action string
	// Hidden adds hidden inputs to submission forms.
	Hidden map[string]string
	// Submitted renders the confirmation instead of the form.
	Submitted bool
	// Locale and Translator localise the chrome strings.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}
