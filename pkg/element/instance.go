package element

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Instance is one placed element of a form. ID is unique within a form's
// content and Type never changes after construction.
type Instance struct {
	ID         string
	Type       Type
	Attributes Attributes
}

// wireInstance is the persisted JSON shape.
type wireInstance struct {
	ID              string          `json:"id"`
	Type            Type            `json:"type"`
	ExtraAttributes json.RawMessage `json:"extraAttributes,omitempty"`
}

// Clone returns a copy of the instance with its attribute payload deep
// copied, so mutating one side never affects the other.
func (i Instance) Clone() Instance {
	return Instance{
		ID:         i.ID,
		Type:       i.Type,
		Attributes: CloneAttributes(i.Attributes),
	}
}

// Check verifies the instance invariants: non-empty id, a known type, and an
// attribute payload whose shape belongs to that type.
func (i Instance) Check() error {
	if i.ID == "" {
		return errors.New("element: instance id is required")
	}
	if !i.Type.Valid() {
		return fmt.Errorf("element: instance %q has unknown type %q", i.ID, i.Type)
	}
	if i.Attributes == nil {
		return fmt.Errorf("element: instance %q has no attributes", i.ID)
	}
	if got := i.Attributes.Type(); got != i.Type {
		return fmt.Errorf("element: instance %q of type %q carries %q attributes", i.ID, i.Type, got)
	}
	return nil
}

// MarshalJSON encodes the instance as {id, type, extraAttributes}.
func (i Instance) MarshalJSON() ([]byte, error) {
	wire := wireInstance{ID: i.ID, Type: i.Type}
	if i.Attributes != nil {
		raw, err := json.Marshal(i.Attributes)
		if err != nil {
			return nil, fmt.Errorf("element: encode attributes of %q: %w", i.ID, err)
		}
		wire.ExtraAttributes = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the persisted shape, choosing the attribute payload
// from the type tag. A missing extraAttributes object yields the zero payload
// of the type.
func (i *Instance) UnmarshalJSON(data []byte) error {
	var wire wireInstance
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	attrs, err := DecodeAttributes(wire.Type, wire.ExtraAttributes)
	if err != nil {
		return err
	}
	*i = Instance{ID: wire.ID, Type: wire.Type, Attributes: attrs}
	return nil
}

// DecodeAttributes decodes a raw extraAttributes object into the payload
// struct of the given type.
func DecodeAttributes(t Type, raw json.RawMessage) (Attributes, error) {
	switch t {
	case TypeTitle:
		return decodeInto[TitleAttributes](t, raw)
	case TypeSubtitle:
		return decodeInto[SubtitleAttributes](t, raw)
	case TypeParagraph:
		return decodeInto[ParagraphAttributes](t, raw)
	case TypeSeparator:
		return decodeInto[SeparatorAttributes](t, raw)
	case TypeSpacer:
		return decodeInto[SpacerAttributes](t, raw)
	case TypeText:
		return decodeInto[TextAttributes](t, raw)
	case TypeNumber:
		return decodeInto[NumberAttributes](t, raw)
	case TypeTextarea:
		return decodeInto[TextareaAttributes](t, raw)
	case TypeDate:
		return decodeInto[DateAttributes](t, raw)
	case TypeSelect:
		attrs, err := decodeInto[SelectAttributes](t, raw)
		if err != nil {
			return nil, err
		}
		return attrs.clone(), nil
	case TypeCheckbox:
		return decodeInto[CheckboxAttributes](t, raw)
	default:
		return nil, fmt.Errorf("element: unknown type %q", t)
	}
}

func decodeInto[A Attributes](t Type, raw json.RawMessage) (Attributes, error) {
	var attrs A
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return attrs, nil
	}
	if err := json.Unmarshal(trimmed, &attrs); err != nil {
		return nil, fmt.Errorf("element: decode %s attributes: %w", t, err)
	}
	return attrs, nil
}
