package fields

import "github.com/goliatone/go-formdesigner/pkg/element"

// Palette describes the sidebar button that spawns a type.
type Palette struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Surface names the rendering surface a View targets.
type Surface string

const (
	// SurfaceDesigner is the placeholder shown on the designer canvas.
	SurfaceDesigner Surface = "designer"
	// SurfaceInput is the live control used by previews and submissions.
	SurfaceInput Surface = "input"
	// SurfaceProperties is the attribute editor shown for the selection.
	SurfaceProperties Surface = "properties"
)

// SubmitFunc receives a confirmed value change for an element.
type SubmitFunc func(id, value string)

// InputState carries the per-render state of a live input: the value
// collected so far, whether the last validation run flagged the element, the
// generation of that run and the callback that records confirmed changes.
// A nil Submit renders a read-only control (preview).
type InputState struct {
	Value      string
	Invalid    bool
	Generation uint64
	Submit     SubmitFunc
}

// View is the renderer-agnostic output of a render hook. Renderers map
// Surface/Component onto a template or a prompt and read Props for content.
type View struct {
	Surface    Surface        `json:"surface"`
	Component  string         `json:"component"`
	ElementID  string         `json:"elementId"`
	Type       element.Type   `json:"type"`
	Props      map[string]any `json:"props,omitempty"`
	Value      string         `json:"value,omitempty"`
	Invalid    bool           `json:"invalid,omitempty"`
	Generation uint64         `json:"generation,omitempty"`
	ReadOnly   bool           `json:"readOnly,omitempty"`

	// Submit is set on interactive input views. Adapters call it once per
	// user-confirmed change; it records the value through the session
	// callback and reports whether the value is valid for the element.
	Submit func(value string) bool `json:"-"`
}

// PropertyField describes one editable attribute in the properties view.
type PropertyField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Value       any    `json:"value"`
	Description string `json:"description,omitempty"`
}

// Property field kinds understood by renderers.
const (
	PropertyText    = "text"
	PropertyNumber  = "number"
	PropertySwitch  = "switch"
	PropertyOptions = "options"
)

// Descriptor bundles the behaviour of one element type: construction with
// defaults, value validation, attribute schema checks and the three render
// hooks. Every field is required; the registry rejects partial descriptors.
type Descriptor struct {
	Type    element.Type
	Palette Palette

	// Construct returns a new instance with the type defaults. It must be
	// deterministic for a given id.
	Construct func(id string) element.Instance
	// Validate reports whether value is acceptable for the instance.
	Validate func(inst element.Instance, value string) bool
	// Check lists schema violations of an attribute payload of this type.
	Check func(attrs element.Attributes) []element.Violation

	Designer   func(inst element.Instance) View
	Input      func(inst element.Instance, state InputState) View
	Properties func(inst element.Instance) View
}

func (d Descriptor) complete() bool {
	return d.Construct != nil &&
		d.Validate != nil &&
		d.Check != nil &&
		d.Designer != nil &&
		d.Input != nil &&
		d.Properties != nil
}
