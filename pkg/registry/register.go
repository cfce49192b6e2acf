package registry

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-storygen/internal/schema"
	"github.com/goliatone/go-storygen/pkg/model"
	"github.com/goliatone/go-storygen/pkg/render"
)

// Register adds a story type to the registry under its struct type name. The
// argument schema is inferred once, here; renders only decode payloads
// against it. Re-registering a name is rejected rather than silently
// shadowed or duplicated.
func Register[T Story](r *Registry) error {
	storyType := reflect.TypeFor[T]()
	sch, err := schema.Build(storyType)
	if err != nil {
		return fmt.Errorf("registry: register %s: %w", storyType, err)
	}

	d := &descriptor{
		schema: sch,
		renderFn: func(payload map[string]any) (render.Node, error) {
			value, err := sch.Decode(payload)
			if err != nil {
				return nil, err
			}
			story, ok := value.(Story)
			if !ok {
				return nil, fmt.Errorf("decoded %s does not implement Story", storyType)
			}
			return story.Render(), nil
		},
	}
	return r.add(sch.Name(), d)
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister[T Story](r *Registry) {
	if err := Register[T](r); err != nil {
		panic(err)
	}
}

// RegisterEnum adds an option-providing enumeration under its type name.
// Callers should register every enum before the first select render; the
// registry tolerates misordering but option lists stay empty until the enum
// arrives.
func RegisterEnum[E model.StringEnum](r *Registry) error {
	var zero E
	name := reflect.TypeOf(zero).Name()
	if name == "" {
		return fmt.Errorf("registry: enum type %T has no name", zero)
	}
	return r.addEnum(name, zero.Variants())
}

// MustRegisterEnum panics on registration failure.
func MustRegisterEnum[E model.StringEnum](r *Registry) {
	if err := RegisterEnum[E](r); err != nil {
		panic(err)
	}
}
