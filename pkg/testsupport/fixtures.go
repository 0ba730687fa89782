package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// LoadElements reads a JSON or YAML content fixture. Testing helpers fail the
// test on error to keep contract tests concise.
func LoadElements(t *testing.T, path string) []element.Instance {
	t.Helper()

	list, err := LoadElementsFromPath(path)
	if err != nil {
		t.Fatalf("load elements: %v", err)
	}
	return list
}

// LoadElementsFromPath returns the parsed list without requiring testing.T,
// so callers can wire fixtures in setup functions.
func LoadElementsFromPath(path string) ([]element.Instance, error) {
	if path == "" {
		return nil, errors.New("testsupport: content path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read content: %w", err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return element.ParseYAML(data)
	default:
		return element.Parse(data)
	}
}
