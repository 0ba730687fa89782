// Package element defines the data model shared by every surface of the form
// designer: the closed set of element type tags, the element instance carried
// in a form's ordered content list, and the per-type attribute payloads.
//
// Attributes is a sealed sum type. Each Type has exactly one attribute struct
// (TitleAttributes, TextAttributes, ...) and code that needs per-type behaviour
// switches over the concrete payload. Adding a type means adding a Type
// constant, an attribute struct, a decode case and a descriptor in
// pkg/fields; the compiler and the exhaustive switches point at every place
// that needs updating.
//
// Persisted content is a JSON array of {id, type, extraAttributes} objects in
// list order. Marshal and Parse round-trip that representation; ParseYAML
// accepts the same shape authored as YAML.
package element
