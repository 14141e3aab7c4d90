// Package openapi derives field wrapper props from OpenAPI component
// schemas, so callers can wire generated fields into the wrapper/aggregator
// protocol without hand-writing Props.
package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldwrap/pkg/field"
)

// Schema extensions consumed by the adapter.
const (
	autocompleteExtension = "x-autocomplete"
	controlExtension      = "x-control"
	placeholderExtension  = "x-placeholder"
	helpExtension         = "x-help"
)

// FromSchemaData loads an OpenAPI document from raw bytes and derives props
// from the named component schema. Property order is deterministic (sorted
// by property name).
func FromSchemaData(ctx context.Context, data []byte, schemaName string) ([]field.Props, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no components")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	return FromSchema(ref, schemaName)
}

// FromSchema derives props from a resolved schema ref. Non-object schemas
// yield a single field named after the schema.
func FromSchema(ref *openapi3.SchemaRef, name string) ([]field.Props, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q is unresolved", name)
	}

	schema := ref.Value
	if len(schema.Properties) == 0 {
		return []field.Props{propsFromSchema(name, schema, false)}, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, propName := range schema.Required {
		required[propName] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	out := make([]field.Props, 0, len(names))
	for _, propName := range names {
		propRef := schema.Properties[propName]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		_, isRequired := required[propName]
		out = append(out, propsFromSchema(propName, propRef.Value, isRequired))
	}
	return out, nil
}

func propsFromSchema(name string, schema *openapi3.Schema, required bool) field.Props {
	props := field.Props{
		ID:           name,
		Label:        schemaLabel(name, schema),
		Required:     required,
		HelpText:     strings.TrimSpace(schema.Description),
		Control:      controlFor(schema),
		Autocomplete: extensionString(schema, autocompleteExtension),
		Placeholder:  extensionString(schema, placeholderExtension),
	}

	if help := extensionString(schema, helpExtension); help != "" {
		props.HelpText = help
	}
	if control := extensionString(schema, controlExtension); control != "" {
		props.Control = control
	}
	if schema.Default != nil {
		props.Value = schema.Default
	}

	if len(schema.Enum) > 0 {
		options := make([]string, 0, len(schema.Enum))
		for _, option := range schema.Enum {
			options = append(options, fmt.Sprint(option))
		}
		props.Metadata = mergeMetadata(props.Metadata, "options", strings.Join(options, ","))
	}
	if inputType := inputTypeFor(schema); inputType != "" {
		props.Metadata = mergeMetadata(props.Metadata, "inputType", inputType)
	}

	return props
}

func schemaLabel(name string, schema *openapi3.Schema) string {
	if title := strings.TrimSpace(schema.Title); title != "" {
		return title
	}
	return humanize(name)
}

func controlFor(schema *openapi3.Schema) string {
	switch {
	case schemaTypeIs(schema, "boolean"):
		return "checkbox"
	case len(schema.Enum) > 0:
		return "select"
	case schemaTypeIs(schema, "string") && schema.Format == "textarea":
		return "textarea"
	default:
		return ""
	}
}

func inputTypeFor(schema *openapi3.Schema) string {
	switch {
	case schemaTypeIs(schema, "integer"), schemaTypeIs(schema, "number"):
		return "number"
	case schema.Format == "email":
		return "email"
	case schema.Format == "uri", schema.Format == "url":
		return "url"
	case schema.Format == "password":
		return "password"
	case schema.Format == "date":
		return "date"
	case schema.Format == "date-time":
		return "datetime-local"
	default:
		return ""
	}
}

func schemaTypeIs(schema *openapi3.Schema, t string) bool {
	return schema.Type != nil && schema.Type.Is(t)
}

func extensionString(schema *openapi3.Schema, key string) string {
	if len(schema.Extensions) == 0 {
		return ""
	}
	if value, ok := schema.Extensions[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func mergeMetadata(metadata map[string]string, key, value string) map[string]string {
	if metadata == nil {
		metadata = make(map[string]string, 1)
	}
	metadata[key] = value
	return metadata
}

// humanize turns a property name like "billing_email" or "billingEmail" into
// "Billing email".
func humanize(name string) string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	if len(words) == 0 {
		return name
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}
