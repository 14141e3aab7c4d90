package controls

import (
	"bytes"
	"html"
	"strings"

	"github.com/goliatone/go-fieldwrap/pkg/field"
)

// Built-in control names.
const (
	ControlInput    = "input"
	ControlTextarea = "textarea"
	ControlSelect   = "select"
	ControlCheckbox = "checkbox"
)

// optionsMetadataKey holds the comma-separated option list select controls
// render, e.g. Metadata["options"] = "draft,published,archived".
const optionsMetadataKey = "options"

// NewDefaultRegistry returns a registry seeded with the built-in controls.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(ControlInput, Descriptor{Renderer: renderInput})
	registry.MustRegister(ControlTextarea, Descriptor{Renderer: renderTextarea})
	registry.MustRegister(ControlSelect, Descriptor{Renderer: renderSelect})
	registry.MustRegister(ControlCheckbox, Descriptor{Renderer: renderCheckbox})
	return registry
}

func renderInput(buf *bytes.Buffer, slot field.ControlContext, props field.Props, value string) error {
	inputType := strings.TrimSpace(props.Metadata["inputType"])
	if inputType == "" {
		inputType = "text"
	}

	buf.WriteString(`<input type="`)
	buf.WriteString(html.EscapeString(inputType))
	buf.WriteString(`"`)
	writeCommonAttrs(buf, slot)
	if value != "" {
		buf.WriteString(` value="`)
		buf.WriteString(html.EscapeString(value))
		buf.WriteString(`"`)
	}
	if props.Placeholder != "" {
		buf.WriteString(` placeholder="`)
		buf.WriteString(html.EscapeString(props.Placeholder))
		buf.WriteString(`"`)
	}
	buf.WriteString(">")
	return nil
}

func renderTextarea(buf *bytes.Buffer, slot field.ControlContext, props field.Props, value string) error {
	buf.WriteString(`<textarea`)
	writeCommonAttrs(buf, slot)
	if props.Placeholder != "" {
		buf.WriteString(` placeholder="`)
		buf.WriteString(html.EscapeString(props.Placeholder))
		buf.WriteString(`"`)
	}
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(value))
	buf.WriteString("</textarea>")
	return nil
}

func renderSelect(buf *bytes.Buffer, slot field.ControlContext, props field.Props, value string) error {
	buf.WriteString(`<select`)
	writeCommonAttrs(buf, slot)
	buf.WriteString(">\n")

	for _, option := range splitOptions(props.Metadata[optionsMetadataKey]) {
		buf.WriteString(`    <option value="`)
		buf.WriteString(html.EscapeString(option))
		buf.WriteString(`"`)
		if option == value {
			buf.WriteString(` selected`)
		}
		buf.WriteString(">")
		buf.WriteString(html.EscapeString(option))
		buf.WriteString("</option>\n")
	}

	buf.WriteString("</select>")
	return nil
}

func renderCheckbox(buf *bytes.Buffer, slot field.ControlContext, props field.Props, value string) error {
	buf.WriteString(`<input type="checkbox"`)
	writeCommonAttrs(buf, slot)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "checked":
		buf.WriteString(` checked`)
	}
	buf.WriteString(">")
	return nil
}

// writeCommonAttrs emits the accessibility wiring every built-in control
// shares: id/name, descriptor linking, invalid flag, required, autocomplete.
// The label reaches the control through <label for>, so aria-labelledby is
// not repeated here.
func writeCommonAttrs(buf *bytes.Buffer, slot field.ControlContext) {
	buf.WriteString(` id="`)
	buf.WriteString(html.EscapeString(slot.ID))
	buf.WriteString(`" name="`)
	buf.WriteString(html.EscapeString(slot.ID))
	buf.WriteString(`" class="fw-control"`)

	if slot.DescribedBy != "" {
		buf.WriteString(` aria-describedby="`)
		buf.WriteString(html.EscapeString(slot.DescribedBy))
		buf.WriteString(`"`)
	}
	if slot.Invalid {
		buf.WriteString(` aria-invalid="true"`)
	}
	if slot.Required {
		buf.WriteString(` required`)
	}
	if slot.Autocomplete != "" {
		buf.WriteString(` autocomplete="`)
		buf.WriteString(html.EscapeString(slot.Autocomplete))
		buf.WriteString(`"`)
	}
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
