package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestMessages_FallsBackToDefaults(t *testing.T) {
	got := render.Messages(render.RenderOptions{})
	if got[render.MsgSubmit] != "Submit" {
		t.Fatalf("expected default submit label, got %q", got[render.MsgSubmit])
	}
	if len(got) != len(render.DefaultMessages) {
		t.Fatalf("expected %d messages, got %d", len(render.DefaultMessages), len(got))
	}
}

func TestMessages_UsesTranslator(t *testing.T) {
	opts := render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{render.MsgSubmit: "Enviar"},
	}
	got := render.Messages(opts)
	if got[render.MsgSubmit] != "Enviar" {
		t.Fatalf("expected translated label, got %q", got[render.MsgSubmit])
	}
	if got[render.MsgSubmitted] != "Form submitted" {
		t.Fatalf("expected fallback for missing key, got %q", got[render.MsgSubmitted])
	}
}

func TestTranslate_OnMissing(t *testing.T) {
	var seen []string
	opts := render.RenderOptions{
		Locale:     "fr",
		Translator: stubTranslator{},
		OnMissing: func(locale, key, fallback string, err error) string {
			seen = append(seen, locale+":"+key)
			if err == nil {
				t.Fatalf("expected translation error")
			}
			return "[" + fallback + "]"
		},
	}
	if got := render.Translate(opts, render.MsgDropHere); got != "[Drop here]" {
		t.Fatalf("unexpected translation %q", got)
	}
	if len(seen) != 1 || seen[0] != "fr:"+render.MsgDropHere {
		t.Fatalf("unexpected handler calls %v", seen)
	}
}

func TestTranslate_MissingTranslatorWithLocale(t *testing.T) {
	opts := render.RenderOptions{
		Locale: "de",
		OnMissing: func(_, _, fallback string, err error) string {
			if !errors.Is(err, render.ErrMissingTranslator) {
				t.Fatalf("expected ErrMissingTranslator, got %v", err)
			}
			return fallback
		},
	}
	if got := render.Translate(opts, render.MsgSubmit); got != "Submit" {
		t.Fatalf("unexpected translation %q", got)
	}
}
