package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-storygen/pkg/model"
	"github.com/goliatone/go-storygen/pkg/registry"
)

// Option customises a Runner.
type Option func(*Runner)

// WithDriver injects a custom prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput redirects the rendered HTML (default stdout).
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		if out != nil {
			r.out = out
		}
	}
}

// Runner walks a user through rendering one story from the registry.
type Runner struct {
	reg    *registry.Registry
	driver PromptDriver
	out    io.Writer
}

// New constructs a Runner bound to a populated registry.
func New(reg *registry.Registry, options ...Option) (*Runner, error) {
	if reg == nil {
		return nil, errors.New("preview: registry is required")
	}
	r := &Runner{
		reg:    reg,
		driver: newSurveyDriver(),
		out:    os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Run prompts for a story and its arguments, renders it, and writes the HTML
// to the configured output.
func (r *Runner) Run(ctx context.Context) error {
	stories := r.reg.Stories()
	if len(stories) == 0 {
		return errors.New("preview: no stories registered")
	}

	names := make([]string, 0, len(stories))
	for _, story := range stories {
		names = append(names, story.Name)
	}
	pick, err := r.driver.Select(ctx, SelectConfig{
		Message: "Story",
		Options: names,
	})
	if err != nil {
		return err
	}
	story := stories[pick]

	payload, err := r.collectArgs(ctx, story)
	if err != nil {
		return err
	}

	node, err := r.reg.Render(story.Name, payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, node.HTML())
	return err
}

// collectArgs asks one question per argument. Blank answers leave the key out
// of the payload so the schema default applies.
func (r *Runner) collectArgs(ctx context.Context, story model.StoryModel) (map[string]any, error) {
	payload := make(map[string]any, len(story.Args))
	for _, arg := range story.Args {
		switch arg.Control {
		case model.ControlBoolean:
			value, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: arg.Name,
				Default: arg.Default == "true",
			})
			if err != nil {
				return nil, err
			}
			payload[arg.Name] = value

		case model.ControlNumber:
			answer, err := r.driver.Input(ctx, InputConfig{
				Message: arg.Name,
				Default: arg.Default,
				Help:    "numeric value",
			})
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(answer) == "" {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
			if err != nil {
				return nil, fmt.Errorf("preview: argument %q: %w", arg.Name, err)
			}
			payload[arg.Name] = value

		case model.ControlSelect:
			options := r.reg.Options(arg.OptionsKey)
			if len(options) == 0 {
				// Enum never registered; fall back to the schema default.
				continue
			}
			pick, err := r.driver.Select(ctx, SelectConfig{
				Message: arg.Name,
				Options: options,
			})
			if err != nil {
				return nil, err
			}
			payload[arg.Name] = options[pick]

		default:
			answer, err := r.driver.Input(ctx, InputConfig{
				Message: arg.Name,
				Default: stripQuotes(arg.Default),
			})
			if err != nil {
				return nil, err
			}
			if answer == "" {
				continue
			}
			payload[arg.Name] = answer
		}
	}
	return payload, nil
}

func stripQuotes(literal string) string {
	if len(literal) >= 2 && strings.HasPrefix(literal, "'") && strings.HasSuffix(literal, "'") {
		return literal[1 : len(literal)-1]
	}
	if literal == model.DefaultNull || literal == model.DefaultUndefined {
		return ""
	}
	return literal
}
