package element

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal serializes an element list into persisted content. A nil list
// encodes as an empty array so stored content is always a JSON array.
func Marshal(elements []Instance) ([]byte, error) {
	if elements == nil {
		elements = []Instance{}
	}
	data, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("element: marshal content: %w", err)
	}
	return data, nil
}

// Parse decodes persisted content into a fresh element list and checks the
// list invariants: every instance is well formed and ids are unique. Empty
// input is an empty form.
func Parse(data []byte) ([]Instance, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []Instance{}, nil
	}
	var elements []Instance
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("element: parse content: %w", err)
	}
	if elements == nil {
		elements = []Instance{}
	}
	if err := CheckList(elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// ParseYAML decodes content authored as YAML. The document must be a
// sequence of mappings with the same keys as the JSON form.
func ParseYAML(data []byte) ([]Instance, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("element: parse yaml content: %w", err)
	}
	if doc == nil {
		return []Instance{}, nil
	}
	if _, ok := doc.([]any); !ok {
		return nil, fmt.Errorf("element: yaml content must be a sequence, got %T", doc)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("element: convert yaml content: %w", err)
	}
	return Parse(raw)
}

// CheckList validates every instance and the uniqueness of ids.
func CheckList(elements []Instance) error {
	seen := make(map[string]struct{}, len(elements))
	for idx, inst := range elements {
		if err := inst.Check(); err != nil {
			return fmt.Errorf("element: content[%d]: %w", idx, err)
		}
		if _, dup := seen[inst.ID]; dup {
			return fmt.Errorf("element: content[%d]: duplicate id %q", idx, inst.ID)
		}
		seen[inst.ID] = struct{}{}
	}
	return nil
}

// CloneList deep copies an element list.
func CloneList(elements []Instance) []Instance {
	if elements == nil {
		return nil
	}
	out := make([]Instance, len(elements))
	for idx, inst := range elements {
		out[idx] = inst.Clone()
	}
	return out
}

// IndexOf returns the position of the first instance with the given id, or -1.
func IndexOf(elements []Instance, id string) int {
	for idx, inst := range elements {
		if inst.ID == id {
			return idx
		}
	}
	return -1
}
