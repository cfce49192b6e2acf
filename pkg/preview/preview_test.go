package preview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-storygen/pkg/registry"
	"github.com/goliatone/go-storygen/pkg/render"
)

type toggleKind string

func (toggleKind) Variants() []string {
	return []string{"On", "Off"}
}

type toggle struct {
	Label   string     `story:"lorem=2"`
	Kind    toggleKind `story:"control=select"`
	Checked bool
	Weight  float64 `story:"default=1"`
}

func (t toggle) Render() render.Node {
	return render.El("label").
		Text(t.Label).
		Attr("data-kind", string(t.Kind)).
		Attr("data-checked", boolAttr(t.Checked))
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

type stubDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	inputAt, confirmAt, selectAt int
}

func (d *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	answer := d.inputs[d.inputAt]
	d.inputAt++
	return answer, nil
}

func (d *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	answer := d.confirms[d.confirmAt]
	d.confirmAt++
	return answer, nil
}

func (d *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	answer := d.selects[d.selectAt]
	d.selectAt++
	if answer >= len(cfg.Options) {
		answer = 0
	}
	return answer, nil
}

func populated(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	registry.MustRegisterEnum[toggleKind](reg)
	registry.MustRegister[toggle](reg)
	return reg
}

func TestRun_RendersPickedStory(t *testing.T) {
	reg := populated(t)

	var out bytes.Buffer
	driver := &stubDriver{
		selects:  []int{0, 1}, // story pick, then Kind = "Off"
		inputs:   []string{"hello", "2.5"},
		confirms: []bool{true},
	}

	runner, err := New(reg, WithDriver(driver), WithOutput(&out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	html := out.String()
	if !strings.Contains(html, "hello") {
		t.Fatalf("output missing label: %q", html)
	}
	if !strings.Contains(html, `data-kind="Off"`) {
		t.Fatalf("output missing selected variant: %q", html)
	}
	if !strings.Contains(html, `data-checked="true"`) {
		t.Fatalf("output missing confirmed flag: %q", html)
	}
}

func TestRun_BlankAnswersFallBackToDefaults(t *testing.T) {
	reg := populated(t)

	var out bytes.Buffer
	driver := &stubDriver{
		selects:  []int{0, 0},
		inputs:   []string{"", ""}, // label and weight left blank
		confirms: []bool{false},
	}

	runner, err := New(reg, WithDriver(driver), WithOutput(&out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "lorem ipsum") {
		t.Fatalf("blank answer did not fall back to lorem default: %q", out.String())
	}
}

func TestRun_EmptyRegistry(t *testing.T) {
	runner, err := New(registry.New(), WithDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := runner.Run(context.Background()); err == nil {
		t.Fatal("expected error for empty registry")
	}
}

func TestNew_RequiresRegistry(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil registry")
	}
}
