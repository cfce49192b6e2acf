package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-storygen/internal/tags"
	"github.com/goliatone/go-storygen/pkg/lorem"
	"github.com/goliatone/go-storygen/pkg/model"
)

// OptionsLookup resolves an enum type name to its ordered variants. It returns
// nil when the enum has not registered yet.
type OptionsLookup func(typeName string) []string

// Schema is the resolved argument schema for one story type.
type Schema struct {
	storyType reflect.Type
	name      string
	fields    []fieldSchema
}

type fieldSchema struct {
	argName string
	index   int
	control model.ControlType
	// defaultLiteral is the resolved JS-literal default, always non-empty.
	defaultLiteral string
	required       bool
	// optional fields tolerate a missing payload key without applying the
	// default literal: select controls and pointer fields.
	optional   bool
	optionsKey string
	// target is the concrete value type, with the pointer wrapper stripped.
	target  reflect.Type
	pointer bool
}

// numericTokens are matched, in order, against a type name during control
// auto-detection. Boolean detection runs first.
var numericTokens = []string{"int", "float", "byte", "rune"}

// Build resolves the schema for a story struct type.
func Build(storyType reflect.Type) (*Schema, error) {
	if storyType == nil {
		return nil, fmt.Errorf("schema: story type is required")
	}
	if storyType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: story type %s is not a struct", storyType)
	}

	s := &Schema{
		storyType: storyType,
		name:      storyType.Name(),
	}

	for i := 0; i < storyType.NumField(); i++ {
		field := storyType.Field(i)
		if !field.IsExported() {
			continue
		}
		s.fields = append(s.fields, buildField(field, i))
	}
	return s, nil
}

func buildField(field reflect.StructField, index int) fieldSchema {
	spec := tags.Parse(field.Tag.Get(tags.TagKey))

	pointer := field.Type.Kind() == reflect.Pointer
	target := field.Type
	if pointer {
		target = target.Elem()
	}

	control := resolveControl(spec, field.Type)

	fs := fieldSchema{
		argName:  argName(field),
		index:    index,
		control:  control,
		required: !pointer,
		optional: pointer || control == model.ControlSelect,
		target:   target,
		pointer:  pointer,
	}
	if control == model.ControlSelect {
		fs.optionsKey = typeName(target)
	}
	fs.defaultLiteral = resolveDefault(spec, control, target)
	return fs
}

// resolveControl applies the explicit override table first, then token
// auto-detection against the declared (or `from`-overridden) type name.
func resolveControl(spec model.FieldSpec, declared reflect.Type) model.ControlType {
	if spec.Control != "" {
		switch spec.Control {
		case "color":
			return model.ControlColor
		case "select":
			return model.ControlSelect
		default:
			return model.ControlText
		}
	}

	name := typeName(declared)
	if spec.From != "" {
		name = spec.From
	}
	if strings.Contains(name, "bool") {
		return model.ControlBoolean
	}
	for _, token := range numericTokens {
		if strings.Contains(name, token) {
			return model.ControlNumber
		}
	}
	return model.ControlText
}

// resolveDefault picks the explicit literal, then a lorem placeholder, then
// the control-appropriate zero value.
func resolveDefault(spec model.FieldSpec, control model.ControlType, target reflect.Type) string {
	if spec.Default != nil {
		return *spec.Default
	}
	if spec.Lorem != nil {
		return "'" + lorem.Words(*spec.Lorem) + "'"
	}

	switch control {
	case model.ControlSelect:
		return model.DefaultNull
	case model.ControlBoolean:
		return model.DefaultFalse
	case model.ControlNumber:
		return model.DefaultZero
	default:
		if target.Kind() == reflect.String {
			return model.DefaultEmpty
		}
		return model.DefaultUndefined
	}
}

// typeName strips the pointer marker and package qualifier so token matching
// and enum keys operate on the bare type name.
func typeName(t reflect.Type) string {
	name := t.String()
	name = strings.TrimPrefix(name, "*")
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return name
}

// argName derives the payload key: json tag first, else the lower-camel form
// of the Go field name.
func argName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	name := field.Name
	return strings.ToLower(name[:1]) + name[1:]
}

// Name reports the story name, taken from the struct type name.
func (s *Schema) Name() string {
	return s.name
}

// ArgTypes materialises the schema records. Select entries resolve their
// options through lookup at call time so enums that registered after the
// story still surface their variants.
func (s *Schema) ArgTypes(lookup OptionsLookup) []model.ArgType {
	args := make([]model.ArgType, 0, len(s.fields))
	for _, field := range s.fields {
		arg := model.ArgType{
			Name:       field.argName,
			Control:    field.control,
			Default:    field.defaultLiteral,
			Required:   field.required,
			OptionsKey: field.optionsKey,
		}
		if field.optionsKey != "" && lookup != nil {
			arg.Options = lookup(field.optionsKey)
		}
		args = append(args, arg)
	}
	return args
}

// Model bundles the story name with its resolved arg types.
func (s *Schema) Model(lookup OptionsLookup) model.StoryModel {
	return model.StoryModel{Name: s.name, Args: s.ArgTypes(lookup)}
}

// SelectKeys lists the enum type names referenced by select controls.
func (s *Schema) SelectKeys() []string {
	var keys []string
	for _, field := range s.fields {
		if field.optionsKey != "" {
			keys = append(keys, field.optionsKey)
		}
	}
	return keys
}
