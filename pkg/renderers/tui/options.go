package tui

import (
	"io"

	"github.com/goliatone/go-formdesigner/pkg/capture"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

// OutputFormat controls how the recorded payload is returned.
type OutputFormat string

const (
	// OutputFormatJSON returns the submission payload as stored.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText returns one "label: value" line per input.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme holds message prefixes printed by the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints informational lines.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithOutputFormat selects the output serialization.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithRecorder receives the payload when Render builds its own session. By
// default the payload is only returned.
func WithRecorder(recorder capture.Recorder) Option {
	return func(r *Renderer) {
		r.recorder = recorder
	}
}

// WithRegistry sets the field registry used for sessions Render creates.
func WithRegistry(reg *fields.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
