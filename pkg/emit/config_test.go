package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".storygen.yml")
	raw := []byte(`
output_dir: build/stories
title_prefix: Widgets
runtime_import: ../dist/runtime.js
theme:
  name: acme
  variant: dark
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := Config{
		OutputDir:     "build/stories",
		TitlePrefix:   "Widgets",
		RuntimeImport: "../dist/runtime.js",
		Theme:         ThemeConfig{Name: "acme", Variant: "dark"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	if got := len(cfg.Options(nil)); got != 3 {
		t.Fatalf("Options(nil) len = %d, want 3 (theme needs a selector)", got)
	}
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(Config{}, cfg); diff != "" {
		t.Fatalf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".storygen.yml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
