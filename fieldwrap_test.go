package fieldwrap_test

import (
	"context"
	"strings"
	"testing"

	fieldwrap "github.com/goliatone/go-fieldwrap"
)

func TestRenderHTMLTracksFieldInAggregator(t *testing.T) {
	set := fieldwrap.NewErrorSet()

	markup, wrapper, err := fieldwrap.RenderHTML(context.Background(), fieldwrap.Props{
		ID:           "email",
		Label:        "Email",
		ErrorMessage: "required",
	}, set, fieldwrap.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(string(markup), `id="email-error"`) {
		t.Fatalf("markup missing error region:\n%s", markup)
	}
	if set.Valid() {
		t.Fatal("aggregator must track the mounted error")
	}

	wrapper.Unmount()
	if !set.Valid() || set.Len() != 0 {
		t.Fatalf("unmount must withdraw the field; len=%d", set.Len())
	}
}

func TestRenderHTMLFailureWithdrawsRegistration(t *testing.T) {
	set := fieldwrap.NewErrorSet()

	_, wrapper, err := fieldwrap.RenderHTML(context.Background(), fieldwrap.Props{
		ID:           "email",
		Control:      "wysiwyg", // not registered
		ErrorMessage: "required",
	}, set, fieldwrap.RenderOptions{})
	if err == nil {
		t.Fatal("expected render error for unregistered control")
	}
	if wrapper != nil {
		t.Fatal("failed render must not hand back a wrapper")
	}

	// The reporter must not retain a field the caller cannot clear.
	if _, ok := set.Message("email"); ok {
		t.Fatal("stale registration left behind after failed render")
	}
	if !set.Valid() || set.Len() != 0 {
		t.Fatalf("aggregator poisoned after failed render; len=%d", set.Len())
	}
}

func TestRenderHTMLWithoutReporter(t *testing.T) {
	markup, _, err := fieldwrap.RenderHTML(context.Background(), fieldwrap.Props{
		ID:    "name",
		Label: "Name",
	}, nil, fieldwrap.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(markup), `for="name"`) {
		t.Fatalf("markup missing label wiring:\n%s", markup)
	}
}
