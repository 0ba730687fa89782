package formdesigner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/renderers/html"
)

// ParseContent decodes an element list. Files ending in .yaml or .yml are
// read as YAML; anything else as JSON.
func ParseContent(name string, data []byte) ([]Instance, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return element.ParseYAML(data)
	default:
		return element.Parse(data)
	}
}

// ReadContent loads an element list from path.
func ReadContent(path string) ([]Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formdesigner: read %s: %w", path, err)
	}
	elements, err := ParseContent(path, data)
	if err != nil {
		return nil, fmt.Errorf("formdesigner: %s: %w", path, err)
	}
	return elements, nil
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formdesigner.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
