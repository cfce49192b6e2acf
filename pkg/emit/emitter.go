package emit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-storygen/pkg/model"
)

const (
	// EnvOutputDir overrides the artifact directory without code changes.
	EnvOutputDir = "STORYGEN_STORIES_DIR"

	defaultOutputDir     = "storybook/stories"
	defaultTitlePrefix   = "Components"
	defaultRuntimeImport = "../pkg/stories.js"

	storyTemplate = "templates/story.stories.js.tpl"
)

// Option customises an Emitter.
type Option func(*Emitter)

// WithOutputDir sets the artifact directory. It wins over the environment
// override.
func WithOutputDir(dir string) Option {
	return func(e *Emitter) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			e.outputDir = trimmed
		}
	}
}

// WithTitlePrefix sets the story title namespace (default "Components").
func WithTitlePrefix(prefix string) Option {
	return func(e *Emitter) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			e.titlePrefix = trimmed
		}
	}
}

// WithRuntimeImport sets the module specifier the artifact imports the
// runtime bridge from.
func WithRuntimeImport(path string) Option {
	return func(e *Emitter) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			e.runtimeImport = trimmed
		}
	}
}

// WithTemplates swaps the embedded template bundle.
func WithTemplates(engine *Engine) Option {
	return func(e *Emitter) {
		if engine != nil {
			e.engine = engine
		}
	}
}

// WithLogger injects the logger used for swallowed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithThemeSelection resolves a go-theme selection whose tokens are embedded
// in each artifact's parameters block.
func WithThemeSelection(selector theme.ThemeSelector, name, variant string) Option {
	return func(e *Emitter) {
		e.selector = selector
		e.themeName = name
		e.themeVariant = variant
	}
}

// Emitter serializes story schemas into preview-tool artifacts.
type Emitter struct {
	outputDir     string
	titlePrefix   string
	runtimeImport string
	engine        *Engine
	logger        *slog.Logger

	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	parameters   string
}

// New constructs an Emitter. The output directory resolves in order: explicit
// option, STORYGEN_STORIES_DIR, built-in default.
func New(options ...Option) (*Emitter, error) {
	e := &Emitter{
		outputDir:     defaultOutputDir,
		titlePrefix:   defaultTitlePrefix,
		runtimeImport: defaultRuntimeImport,
		logger:        slog.Default(),
	}
	if env := strings.TrimSpace(os.Getenv(EnvOutputDir)); env != "" {
		e.outputDir = env
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.engine == nil {
		engine, err := NewEngine(WithEngineFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("emit: default templates: %w", err)
		}
		e.engine = engine
	}

	e.parameters = e.resolveThemeParameters()
	return e, nil
}

// OutputDir reports the resolved artifact directory.
func (e *Emitter) OutputDir() string {
	return e.outputDir
}

// Emit writes one story artifact, creating the output directory when needed.
func (e *Emitter) Emit(story model.StoryModel) error {
	content, err := e.renderArtifact(story)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return fmt.Errorf("emit: create output dir: %w", err)
	}
	target := filepath.Join(e.outputDir, story.Name+".stories.js")
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("emit: write %s: %w", target, err)
	}
	return nil
}

// EmitAll runs the generation pass over every story. Individual failures are
// logged and skipped; the pass always completes.
func (e *Emitter) EmitAll(stories []model.StoryModel) {
	for _, story := range stories {
		if err := e.Emit(story); err != nil {
			e.logger.Warn("skipping story artifact", "story", story.Name, "error", err)
		}
	}
}

func (e *Emitter) renderArtifact(story model.StoryModel) (string, error) {
	if story.Name == "" {
		return "", fmt.Errorf("emit: story name is required")
	}

	args := make([]map[string]any, 0, len(story.Args))
	defaults := make([]map[string]any, 0, len(story.Args))
	for _, arg := range story.Args {
		category := "optional"
		if arg.Required {
			category = "required"
		}
		optionsExpr := ""
		if arg.Control == model.ControlSelect && arg.OptionsKey != "" {
			optionsExpr = fmt.Sprintf("getEnumOptions('%s')", arg.OptionsKey)
		}
		args = append(args, map[string]any{
			"name":     arg.Name,
			"control":  string(arg.Control),
			"category": category,
			"options":  optionsExpr,
			"default":  arg.Default,
		})
		defaults = append(defaults, map[string]any{
			"name":  arg.Name,
			"value": arg.Default,
		})
	}

	data := map[string]any{
		"story":      story.Name,
		"title":      e.titlePrefix + "/" + story.Name,
		"runtime":    e.runtimeImport,
		"args":       args,
		"defaults":   defaults,
		"parameters": e.parameters,
	}
	return e.engine.RenderTemplate(storyTemplate, data)
}

// resolveThemeParameters turns a theme selection into the JSON parameters
// block. Selection failures degrade to "no parameters".
func (e *Emitter) resolveThemeParameters() string {
	if e.selector == nil {
		return ""
	}
	selection, err := e.selector.Select(e.themeName, e.themeVariant)
	if err != nil || selection == nil {
		e.logger.Warn("theme selection failed", "theme", e.themeName, "error", err)
		return ""
	}

	payload := map[string]any{
		"theme": selection.Theme,
	}
	if selection.Variant != "" {
		payload["variant"] = selection.Variant
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		payload["tokens"] = selection.Manifest.Tokens
	}
	raw, err := json.Marshal(map[string]any{"storygen": payload})
	if err != nil {
		e.logger.Warn("theme parameters marshal failed", "error", err)
		return ""
	}
	return string(raw)
}
