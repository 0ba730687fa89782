// Package html renders forms as HTML pages through the pongo2 engine.
//
// One renderer serves every surface: the designer canvas with its palette and
// drop zones, the read-only preview, the submission form and the properties
// editor of the selected element. Author-provided paragraph text is cleaned
// with a bluemonday UGC policy; everything else is escaped by the engine.
package html
