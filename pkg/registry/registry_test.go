package registry

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storygen/pkg/render"
)

type alertType string

func (alertType) Variants() []string {
	return []string{"Info", "Success", "Warning", "Error"}
}

type alert struct {
	Message   string    `story:"lorem=5"`
	AlertType alertType `json:"alert_type" story:"control=select"`
}

func (a alert) Render() render.Node {
	return render.El("div").Text(a.Message).Attr("data-level", string(a.AlertType))
}

type badge struct {
	Label string `story:"lorem=2"`
	Count int    `story:"default=1"`
}

func (b badge) Render() render.Node {
	return render.El("span").Text(b.Label)
}

func TestRegister_AndRender(t *testing.T) {
	r := New()
	if err := RegisterEnum[alertType](r); err != nil {
		t.Fatalf("RegisterEnum: %v", err)
	}
	if err := Register[alert](r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	node, err := r.Render("alert", map[string]any{"alert_type": "Warning"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := node.HTML()
	if !strings.Contains(got, `data-level="Warning"`) {
		t.Fatalf("rendered node missing payload value: %q", got)
	}
	if !strings.Contains(got, "lorem ipsum dolor sit amet") {
		t.Fatalf("rendered node missing lorem default: %q", got)
	}
}

func TestRender_UnknownNameFailsWithNotFound(t *testing.T) {
	r := New()

	node, err := r.Render("Foo", map[string]any{})
	if node != nil {
		t.Fatalf("expected no node, got %v", node)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Name != "Foo" || nf.Kind != "story" {
		t.Fatalf("NotFoundError = %+v", nf)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound(err) = false")
	}
}

func TestRender_DecodeFailureIsScoped(t *testing.T) {
	r := New()
	MustRegister[badge](r)

	_, err := r.Render("badge", map[string]any{"count": "three"})
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Story != "badge" {
		t.Fatalf("DecodeError.Story = %q", de.Story)
	}

	// The registry itself is unharmed; the next render succeeds.
	if _, err := r.Render("badge", map[string]any{}); err != nil {
		t.Fatalf("subsequent render failed: %v", err)
	}
}

func TestRegister_DuplicateRejected(t *testing.T) {
	r := New()
	MustRegister[badge](r)

	if err := Register[badge](r); err == nil {
		t.Fatal("expected duplicate registration to be rejected")
	}
	if got := len(r.Stories()); got != 1 {
		t.Fatalf("expected a single descriptor, got %d", got)
	}
}

func TestRegisterEnum_DuplicateRejected(t *testing.T) {
	r := New()
	MustRegisterEnum[alertType](r)

	if err := RegisterEnum[alertType](r); err == nil {
		t.Fatal("expected duplicate enum registration to be rejected")
	}
}

func TestOptions_BeforeAndAfterRegistration(t *testing.T) {
	r := New()

	if got := r.Options("alertType"); got != nil {
		t.Fatalf("Options before registration = %v, want nil", got)
	}

	MustRegisterEnum[alertType](r)

	want := []string{"Info", "Success", "Warning", "Error"}
	if diff := cmp.Diff(want, r.Options("alertType")); diff != "" {
		t.Fatalf("Options mismatch (-want +got):\n%s", diff)
	}
}

func TestStories_LateEnumRegistrationPopulatesOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := New(WithLogger(logger))
	MustRegister[alert](r)

	if !strings.Contains(buf.String(), "alertType") {
		t.Fatalf("expected misordering warning mentioning the enum, got %q", buf.String())
	}

	for _, story := range r.Stories() {
		for _, arg := range story.Args {
			if arg.OptionsKey != "" && arg.Options != nil {
				t.Fatalf("options populated before enum registration: %v", arg.Options)
			}
		}
	}

	MustRegisterEnum[alertType](r)

	stories := r.Stories()
	found := false
	for _, arg := range stories[0].Args {
		if arg.OptionsKey == "alertType" {
			found = true
			want := []string{"Info", "Success", "Warning", "Error"}
			if diff := cmp.Diff(want, arg.Options); diff != "" {
				t.Fatalf("late options mismatch (-want +got):\n%s", diff)
			}
		}
	}
	if !found {
		t.Fatal("select arg not present in story schema")
	}
}

func TestStories_RegistrationOrderPreserved(t *testing.T) {
	r := New()
	MustRegister[badge](r)
	MustRegister[alert](r)

	stories := r.Stories()
	if len(stories) != 2 || stories[0].Name != "badge" || stories[1].Name != "alert" {
		t.Fatalf("unexpected order: %+v", stories)
	}
}

func TestCatalog(t *testing.T) {
	r := New()
	MustRegister[badge](r)

	catalog := r.Catalog()
	if len(catalog) != 1 {
		t.Fatalf("catalog size = %d", len(catalog))
	}
	entry := catalog[0]
	if entry.Name != "badge" {
		t.Fatalf("entry name = %q", entry.Name)
	}
	if entry.Args["count"] != "1" {
		t.Fatalf("default args = %v", entry.Args)
	}
	if entry.Args["label"] != "'lorem ipsum'" {
		t.Fatalf("lorem default = %q", entry.Args["label"])
	}

	if _, err := r.CatalogJSON(); err != nil {
		t.Fatalf("CatalogJSON: %v", err)
	}
}
