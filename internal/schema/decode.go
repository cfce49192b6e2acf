package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-storygen/pkg/model"
)

// Decode builds a story value from an untyped payload. Unknown keys are
// ignored, missing keys fall back to the resolved default, and present values
// whose shape does not match the schema fail the whole call.
func (s *Schema) Decode(payload map[string]any) (any, error) {
	out := reflect.New(s.storyType).Elem()
	for _, field := range s.fields {
		raw, present := payload[field.argName]
		if !present || raw == nil {
			if field.optional {
				continue
			}
			s.applyDefault(out.Field(field.index), field)
			continue
		}
		if err := s.applyValue(out.Field(field.index), field, raw); err != nil {
			return nil, err
		}
	}
	return out.Interface(), nil
}

func (s *Schema) applyValue(dst reflect.Value, field fieldSchema, raw any) error {
	switch field.control {
	case model.ControlBoolean:
		value, ok := raw.(bool)
		if !ok {
			return typeMismatch(field, "boolean", raw)
		}
		return setConverted(dst, field, reflect.ValueOf(value))

	case model.ControlNumber:
		value, ok := asFloat(raw)
		if !ok {
			return typeMismatch(field, "number", raw)
		}
		return setConverted(dst, field, reflect.ValueOf(value))

	case model.ControlSelect:
		value, ok := raw.(string)
		if !ok {
			return typeMismatch(field, "string", raw)
		}
		if err := validateVariant(field, value); err != nil {
			return err
		}
		return setConverted(dst, field, reflect.ValueOf(value))

	default: // text and color controls carry strings
		value, ok := raw.(string)
		if !ok {
			return typeMismatch(field, "string", raw)
		}
		return setConverted(dst, field, reflect.ValueOf(value))
	}
}

// applyDefault parses the resolved JS-literal default into the field. Parsing
// is best effort: literals that fail to parse leave the zero value in place so
// a bad annotation never fails a render.
func (s *Schema) applyDefault(dst reflect.Value, field fieldSchema) {
	literal := field.defaultLiteral
	if literal == model.DefaultNull || literal == model.DefaultUndefined {
		return
	}

	switch field.control {
	case model.ControlBoolean:
		value, err := strconv.ParseBool(literal)
		if err != nil {
			return
		}
		_ = setConverted(dst, field, reflect.ValueOf(value))

	case model.ControlNumber:
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return
		}
		_ = setConverted(dst, field, reflect.ValueOf(value))

	case model.ControlSelect:
		value := unquote(literal)
		if validateVariant(field, value) != nil {
			return
		}
		_ = setConverted(dst, field, reflect.ValueOf(value))

	default:
		_ = setConverted(dst, field, reflect.ValueOf(unquote(literal)))
	}
}

func setConverted(dst reflect.Value, field fieldSchema, value reflect.Value) error {
	if !value.Type().ConvertibleTo(field.target) {
		return fmt.Errorf("schema: field %q: cannot convert %s to %s",
			field.argName, value.Type(), field.target)
	}
	converted := value.Convert(field.target)
	if field.pointer {
		ptr := reflect.New(field.target)
		ptr.Elem().Set(converted)
		dst.Set(ptr)
		return nil
	}
	dst.Set(converted)
	return nil
}

// validateVariant rejects values outside the enum's declared variants when
// the target type advertises them.
func validateVariant(field fieldSchema, value string) error {
	enum, ok := reflect.Zero(field.target).Interface().(model.Enum)
	if !ok {
		return nil
	}
	for _, variant := range enum.Variants() {
		if variant == value {
			return nil
		}
	}
	return fmt.Errorf("schema: field %q: invalid %s variant: %q",
		field.argName, field.optionsKey, value)
}

func typeMismatch(field fieldSchema, want string, raw any) error {
	return fmt.Errorf("schema: field %q: expected %s, got %T", field.argName, want, raw)
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func unquote(literal string) string {
	if len(literal) >= 2 && strings.HasPrefix(literal, "'") && strings.HasSuffix(literal, "'") {
		return literal[1 : len(literal)-1]
	}
	return literal
}
