package emit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where LoadConfig looks when no path is supplied.
const DefaultConfigPath = ".storygen.yml"

// ThemeConfig names the theme/variant the emitter should resolve through a
// selector provided in code.
type ThemeConfig struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// Config mirrors the `.storygen.yml` emitter settings.
type Config struct {
	OutputDir     string      `yaml:"output_dir"`
	TitlePrefix   string      `yaml:"title_prefix"`
	RuntimeImport string      `yaml:"runtime_import"`
	Theme         ThemeConfig `yaml:"theme"`
}

// LoadConfig reads and parses the YAML config at path. A missing file is not
// an error: it yields the zero config so defaults apply.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("emit: read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("emit: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options translates the config into emitter options. The selector may be nil
// when the config names no theme.
func (c Config) Options(selector theme.ThemeSelector) []Option {
	var options []Option
	if c.OutputDir != "" {
		options = append(options, WithOutputDir(c.OutputDir))
	}
	if c.TitlePrefix != "" {
		options = append(options, WithTitlePrefix(c.TitlePrefix))
	}
	if c.RuntimeImport != "" {
		options = append(options, WithRuntimeImport(c.RuntimeImport))
	}
	if selector != nil && c.Theme.Name != "" {
		options = append(options, WithThemeSelection(selector, c.Theme.Name, c.Theme.Variant))
	}
	return options
}
