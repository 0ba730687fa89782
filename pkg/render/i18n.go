package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key is
// looked up without a Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler chooses the string shown when a key cannot be
// translated. fallback is the built-in English message.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Chrome message keys used by the renderers.
const (
	MsgSubmit          = "form.submit"
	MsgSubmitted       = "form.submitted"
	MsgSubmittedDetail = "form.submitted.detail"
	MsgDropHere        = "designer.drop_here"
	MsgPaletteLayout   = "designer.palette.layout"
	MsgPaletteFields   = "designer.palette.fields"
	MsgProperties      = "designer.properties"
	MsgNoSelection     = "designer.properties.empty"
	MsgRequired        = "field.required"
	MsgMustCheck       = "field.must_check"
	MsgFormErrors      = "form.errors"
)

// DefaultMessages are the English chrome strings.
var DefaultMessages = map[string]string{
	MsgSubmit:          "Submit",
	MsgSubmitted:       "Form submitted",
	MsgSubmittedDetail: "Thank you for submitting the form, you can close this page now.",
	MsgDropHere:        "Drop here",
	MsgPaletteLayout:   "Layout elements",
	MsgPaletteFields:   "Form elements",
	MsgProperties:      "Element properties",
	MsgNoSelection:     "Select an element to edit its properties",
	MsgRequired:        MessageRequired,
	MsgMustCheck:       MessageMustCheck,
	MsgFormErrors:      "Please check the form for errors",
}

// Messages resolves every chrome string for opts.Locale. Keys the translator
// cannot resolve fall back through opts.OnMissing, then to DefaultMessages.
func Messages(opts RenderOptions) map[string]string {
	out := make(map[string]string, len(DefaultMessages))
	for key, fallback := range DefaultMessages {
		out[key] = translate(opts, key, fallback)
	}
	return out
}

// Translate resolves one key the same way Messages does.
func Translate(opts RenderOptions, key string) string {
	return translate(opts, key, DefaultMessages[key])
}

func translate(opts RenderOptions, key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if opts.Translator == nil {
		if opts.OnMissing != nil && opts.Locale != "" {
			return opts.OnMissing(opts.Locale, key, fallback, ErrMissingTranslator)
		}
		return orKey(fallback, key)
	}

	result, err := opts.Translator.Translate(opts.Locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if opts.OnMissing != nil {
		return opts.OnMissing(opts.Locale, key, fallback, err)
	}
	return orKey(fallback, key)
}

func orKey(fallback, key string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
