// Package template defines the seam between renderers and a template engine.
// Renderers depend on TemplateRenderer only; pongo provides the default
// implementation.
package template
