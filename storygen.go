// Package storygen turns annotated Go component declarations into preview
// stories: a runtime-queryable argument schema, generated `.stories.js`
// artifacts for an external preview tool, and a dispatcher that renders a
// story by name from an untyped payload.
//
// Quick start:
//
//	reg := storygen.NewRegistry()
//	storygen.MustRegisterEnum[AlertType](reg)
//	storygen.MustRegister[Alert](reg)
//
//	storygen.GenerateArtifacts(reg, emit.WithOutputDir("storybook/stories"))
//	node, err := reg.Render("Alert", map[string]any{"alert_type": "Warning"})
package storygen

import (
	"fmt"

	"github.com/goliatone/go-storygen/pkg/emit"
	"github.com/goliatone/go-storygen/pkg/model"
	"github.com/goliatone/go-storygen/pkg/registry"
	"github.com/goliatone/go-storygen/pkg/render"
)

// Registry aliases the story/enum registry for convenience.
type Registry = registry.Registry

// Story is the contract a demoable component satisfies.
type Story = registry.Story

// Node is the opaque UI node a story renders to.
type Node = render.Node

// ArgType describes one inferred story argument.
type ArgType = model.ArgType

// ControlType is the input-widget category for an argument.
type ControlType = model.ControlType

// StoryModel is the schema listing for one registered story.
type StoryModel = model.StoryModel

// Control kinds re-exported from the model package.
const (
	ControlText    = model.ControlText
	ControlBoolean = model.ControlBoolean
	ControlNumber  = model.ControlNumber
	ControlColor   = model.ControlColor
	ControlSelect  = model.ControlSelect
)

// NewRegistry creates an empty registry, the explicit context object every
// other entry point operates on.
func NewRegistry(options ...registry.Option) *Registry {
	return registry.New(options...)
}

// Register adds a story type under its struct type name.
func Register[T Story](r *Registry) error {
	return registry.Register[T](r)
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister[T Story](r *Registry) {
	registry.MustRegister[T](r)
}

// RegisterEnum adds an option-providing enumeration under its type name.
// Register enums before the first select render.
func RegisterEnum[E model.StringEnum](r *Registry) error {
	return registry.RegisterEnum[E](r)
}

// MustRegisterEnum panics on registration failure.
func MustRegisterEnum[E model.StringEnum](r *Registry) {
	registry.MustRegisterEnum[E](r)
}

// GenerateArtifacts runs the best-effort emission pass over every registered
// story. Individual artifact failures are logged and skipped; the error here
// only reports emitter construction problems.
func GenerateArtifacts(r *Registry, options ...emit.Option) error {
	if r == nil {
		return fmt.Errorf("storygen: registry is required")
	}
	emitter, err := emit.New(options...)
	if err != nil {
		return err
	}
	emitter.EmitAll(r.Stories())
	return nil
}
