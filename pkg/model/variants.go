package model

import "fmt"

// StringEnum constrains option-providing enumerations to string-kind types so
// variant values round-trip through payloads and artifacts without a codec.
type StringEnum interface {
	~string
	Enum
}

// ParseVariant parses a variant name into its enum value, failing when the
// name is not one of the declared variants.
func ParseVariant[E StringEnum](name string) (E, error) {
	var zero E
	for _, variant := range zero.Variants() {
		if variant == name {
			return E(name), nil
		}
	}
	return zero, fmt.Errorf("model: invalid %T variant: %q", zero, name)
}

// VariantName returns the wire name for an enum value.
func VariantName[E StringEnum](value E) string {
	return string(value)
}
