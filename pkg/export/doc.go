// Package export describes forms to other tools: a JSON Schema for stored
// form content, a JSON Schema for the submission payload of one form and an
// OpenAPI 3 document for its submission endpoint.
package export
