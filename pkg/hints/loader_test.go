package hints_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/hints"
)

func TestLoadFSParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/user.yaml": &fstest.MapFile{Data: []byte(`
fields:
  email:
    label: Email address
    autocomplete: email
    placeholder: you@example.com
    reserveErrorSpace: false
`)},
		"forms/profile.json": &fstest.MapFile{Data: []byte(`{
  "fields": {
    "bio": {"control": "textarea", "help": "Keep it <strong>short</strong>."}
  }
}`)},
		"notes/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := hints.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Empty() {
		t.Fatal("store must not be empty")
	}

	email, ok := store.Field("email")
	if !ok {
		t.Fatal("email hints missing")
	}
	if email.Label != "Email address" || email.Autocomplete != "email" {
		t.Fatalf("email hints = %+v", email)
	}
	if email.ReserveErrorSpace == nil || *email.ReserveErrorSpace {
		t.Fatal("reserveErrorSpace: false must survive loading")
	}

	if _, ok := store.Field("bio"); !ok {
		t.Fatal("json-defined hints missing")
	}
}

func TestLoadFSRejectsDuplicateFieldIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("fields:\n  email:\n    label: One\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("fields:\n  email:\n    label: Two\n")},
	}

	_, err := hints.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate field "email"`) {
		t.Fatalf("err = %v, want duplicate field error", err)
	}
}

func TestLoadFSNilFilesystem(t *testing.T) {
	store, err := hints.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatal("nil fs must yield an empty store")
	}
}

func TestApplyOverlaysProps(t *testing.T) {
	fsys := fstest.MapFS{
		"user.yaml": &fstest.MapFile{Data: []byte(`
fields:
  email:
    label: Email address
    autocomplete: email
    ariaDescribedby: form-intro
    required: true
    help: "Use your <strong>work</strong> address<script>alert(1)</script>"
`)},
	}

	store, err := hints.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := store.Apply(field.Props{ID: "email", AriaDescribedBy: "ext1"})

	if got.Label != "Email address" {
		t.Fatalf("label = %q", got.Label)
	}
	if got.Autocomplete != "email" {
		t.Fatalf("autocomplete = %q", got.Autocomplete)
	}
	if !got.Required {
		t.Fatal("required hint must apply")
	}
	if got.AriaDescribedBy != "ext1 form-intro" {
		t.Fatalf("ariaDescribedby = %q", got.AriaDescribedBy)
	}

	// Sanitizer keeps inline formatting and strips active content.
	if !strings.Contains(got.HelpText, "<strong>work</strong>") {
		t.Fatalf("help lost inline markup: %q", got.HelpText)
	}
	if strings.Contains(got.HelpText, "script") {
		t.Fatalf("help kept active content: %q", got.HelpText)
	}
	if got.Metadata["helpFormat"] != "html" {
		t.Fatalf("metadata = %v, want helpFormat=html", got.Metadata)
	}
}

func TestApplyUntrackedFieldIsIdentity(t *testing.T) {
	store, err := hints.LoadFS(fstest.MapFS{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	props := field.Props{ID: "email", Label: "Email"}
	if diff := cmp.Diff(props, store.Apply(props)); diff != "" {
		t.Fatalf("apply must be identity for untracked fields (-want +got):\n%s", diff)
	}
}
