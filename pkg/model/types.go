package model

// ControlType is the input-widget category a preview tool offers for a story
// argument.
type ControlType string

const (
	ControlText    ControlType = "text"
	ControlBoolean ControlType = "boolean"
	ControlNumber  ControlType = "number"
	ControlColor   ControlType = "color"
	ControlSelect  ControlType = "select"
)

// Default literals shared between the inferencer, decoder, and emitter. They
// are JavaScript literals because that is the encoding the generated story
// artifacts embed verbatim.
const (
	DefaultNull      = "null"
	DefaultUndefined = "undefined"
	DefaultEmpty     = "''"
	DefaultFalse     = "false"
	DefaultZero      = "0"
)

// FieldSpec holds the overrides parsed from one `story` struct tag. A nil
// pointer or empty string means the clause was absent and auto-detection
// applies.
type FieldSpec struct {
	// Control is the raw control override ("color", "select", ...).
	Control string
	// Default is the literal default value, verbatim from the tag.
	Default *string
	// From names the source type used for auto-detection and payload
	// conversion instead of the field's own declared type.
	From string
	// Lorem is the placeholder word count. A bare `lorem` clause parses to 8.
	Lorem *int
}

// ArgType describes one story argument: its control kind, JS-literal default,
// required flag, and, for select controls, the option hook and variant list.
type ArgType struct {
	Name     string      `json:"name"`
	Control  ControlType `json:"control"`
	Default  string      `json:"defaultValue"`
	Required bool        `json:"required"`
	// OptionsKey is the normalized enum type name used to look up variants in
	// the enum registry. Empty for non-select controls.
	OptionsKey string `json:"optionsKey,omitempty"`
	// Options is populated from the enum registry when the schema is queried;
	// nil until the owning enum registers.
	Options []string `json:"options,omitempty"`
}

// StoryModel is the render-agnostic description of one registered story.
type StoryModel struct {
	Name string    `json:"name"`
	Args []ArgType `json:"argTypes"`
}

// EnumModel pairs an enumeration type name with its ordered variant names.
type EnumModel struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// Enum marks an option-providing enumeration. Implementing it on a
// string-kind type is the registration marker: each variant becomes an option
// in a select control. Variant order is preserved everywhere it surfaces.
type Enum interface {
	Variants() []string
}
