package openapi_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/openapi"
)

const userDocument = `
openapi: 3.0.3
info:
  title: fixture
  version: "1.0.0"
paths: {}
components:
  schemas:
    User:
      type: object
      required: [email]
      properties:
        email:
          type: string
          format: email
          title: Email address
          description: Work address preferred
          x-autocomplete: email
          x-placeholder: you@example.com
        bio:
          type: string
          format: textarea
        subscribed:
          type: boolean
        status:
          type: string
          enum: [draft, published]
        billing_email:
          type: string
`

func TestFromSchemaDataDerivesProps(t *testing.T) {
	props, err := openapi.FromSchemaData(context.Background(), []byte(userDocument), "User")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	want := []field.Props{
		{ID: "billing_email", Label: "Billing email"},
		{ID: "bio", Label: "Bio", Control: "textarea"},
		{
			ID:           "email",
			Label:        "Email address",
			Required:     true,
			HelpText:     "Work address preferred",
			Autocomplete: "email",
			Placeholder:  "you@example.com",
			Metadata:     map[string]string{"inputType": "email"},
		},
		{
			ID:       "status",
			Label:    "Status",
			Control:  "select",
			Metadata: map[string]string{"options": "draft,published"},
		},
		{ID: "subscribed", Label: "Subscribed", Control: "checkbox"},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSchemaDataUnknownSchema(t *testing.T) {
	_, err := openapi.FromSchemaData(context.Background(), []byte(userDocument), "Ghost")
	if err == nil || !strings.Contains(err.Error(), `schema "Ghost" not found`) {
		t.Fatalf("err = %v, want schema-not-found", err)
	}
}

func TestFromSchemaDataInvalidDocument(t *testing.T) {
	_, err := openapi.FromSchemaData(context.Background(), []byte("openapi: 3.0.3\n"), "User")
	if err == nil {
		t.Fatal("expected validation error")
	}
}
