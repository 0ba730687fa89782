package capture

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

// Outcome is the result of validating one value snapshot.
type Outcome struct {
	// Invalid lists the ids that failed, in element order.
	Invalid []string
	// Payload maps element ids to collected values; only set when valid.
	Payload map[string]string
}

// OK reports whether every element accepted its value.
func (o Outcome) OK() bool { return len(o.Invalid) == 0 }

// Errors returns the invalid ids as a set.
func (o Outcome) Errors() map[string]bool {
	out := make(map[string]bool, len(o.Invalid))
	for _, id := range o.Invalid {
		out[id] = true
	}
	return out
}

// CollectSubmission validates every element, in order, against its value in
// values (missing values count as ""). All elements are checked even after a
// failure. When all pass, Payload holds the values of the listed elements.
func CollectSubmission(reg *fields.Registry, elements []element.Instance, values map[string]string) Outcome {
	if reg == nil {
		reg = fields.Default()
	}
	var outcome Outcome
	for _, inst := range elements {
		if !reg.Validate(inst, values[inst.ID]) {
			outcome.Invalid = append(outcome.Invalid, inst.ID)
		}
	}
	if !outcome.OK() {
		return outcome
	}
	outcome.Payload = make(map[string]string, len(values))
	for _, inst := range elements {
		if value, ok := values[inst.ID]; ok {
			outcome.Payload[inst.ID] = value
		}
	}
	return outcome
}

// EncodePayload serializes a payload as a JSON object. encoding/json sorts
// map keys, so equal payloads encode identically.
func EncodePayload(payload map[string]string) ([]byte, error) {
	if payload == nil {
		payload = map[string]string{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("capture: encode payload: %w", err)
	}
	return data, nil
}

// DecodePayload parses a stored submission payload.
func DecodePayload(data []byte) (map[string]string, error) {
	payload := map[string]string{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("capture: decode payload: %w", err)
	}
	return payload, nil
}
