package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-storygen/internal/schema"
	"github.com/goliatone/go-storygen/pkg/model"
	"github.com/goliatone/go-storygen/pkg/render"
)

// Story is the contract a demoable component satisfies: render yourself into
// an opaque UI node. Argument annotations live on the implementing struct's
// fields as `story` tags.
type Story interface {
	Render() render.Node
}

// Option customises a Registry.
type Option func(*Registry)

// WithLogger injects the logger used for registration warnings. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type descriptor struct {
	schema   *schema.Schema
	renderFn func(payload map[string]any) (render.Node, error)
}

// Registry stores story descriptors and enum option sets by name. It is
// populated once at startup and read-only afterwards; the mutex exists for
// the host runtime's benefit, not because registration is concurrent.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger

	stories    map[string]*descriptor
	storyOrder []string

	enums     map[string][]string
	enumOrder []string
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		logger:  slog.Default(),
		stories: make(map[string]*descriptor),
		enums:   make(map[string][]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Registry) add(name string, d *descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[name]; exists {
		return fmt.Errorf("registry: story %q already registered", name)
	}
	r.stories[name] = d
	r.storyOrder = append(r.storyOrder, name)

	for _, key := range d.schema.SelectKeys() {
		if _, ok := r.enums[key]; !ok {
			r.logger.Warn("select story registered before its enum",
				"story", name, "enum", key)
		}
	}
	return nil
}

func (r *Registry) addEnum(name string, variants []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.enums[name]; exists {
		return fmt.Errorf("registry: enum %q already registered", name)
	}
	r.enums[name] = append([]string(nil), variants...)
	r.enumOrder = append(r.enumOrder, name)
	return nil
}

// Render resolves a story by name, decodes the payload against its schema,
// and invokes the story's render function. Unknown names fail with
// NotFoundError; payload shape mismatches fail with DecodeError.
func (r *Registry) Render(name string, payload map[string]any) (render.Node, error) {
	r.mu.RLock()
	d, ok := r.stories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Kind: "story", Name: name}
	}

	node, err := d.renderFn(payload)
	if err != nil {
		return nil, &DecodeError{Story: name, Err: err}
	}
	return node, nil
}

// Options returns the ordered variant list for an enum type name, or nil when
// the enum has not registered. Absence is not an error: callers registered
// out of order simply see an empty option list until the enum arrives.
func (r *Registry) Options(typeName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants, ok := r.enums[typeName]
	if !ok {
		return nil
	}
	return append([]string(nil), variants...)
}

// Has reports whether a story is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.stories[name]
	return ok
}

// Story returns the schema model for one registered story.
func (r *Registry) Story(name string) (model.StoryModel, error) {
	r.mu.RLock()
	d, ok := r.stories[name]
	r.mu.RUnlock()
	if !ok {
		return model.StoryModel{}, &NotFoundError{Kind: "story", Name: name}
	}
	return d.schema.Model(r.Options), nil
}

// Stories lists every registered story with its resolved arg types, in
// registration order. Select options reflect the enum registry at call time.
func (r *Registry) Stories() []model.StoryModel {
	r.mu.RLock()
	descriptors := make([]*descriptor, 0, len(r.storyOrder))
	for _, name := range r.storyOrder {
		descriptors = append(descriptors, r.stories[name])
	}
	r.mu.RUnlock()

	out := make([]model.StoryModel, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.schema.Model(r.Options))
	}
	return out
}

// Enums lists every registered enum in registration order.
func (r *Registry) Enums() []model.EnumModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.EnumModel, 0, len(r.enumOrder))
	for _, name := range r.enumOrder {
		out = append(out, model.EnumModel{
			Name:     name,
			Variants: append([]string(nil), r.enums[name]...),
		})
	}
	return out
}
