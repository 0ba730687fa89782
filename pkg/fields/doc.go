// Package fields holds the field-type descriptors: default construction,
// value validation, attribute schemas and the designer/input/properties
// render hooks of every element type, collected in a read-only Registry.
package fields
