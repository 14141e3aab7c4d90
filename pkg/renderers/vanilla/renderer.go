// Package vanilla renders a field wrapper as framework-free HTML: label,
// control slot, help text, and error region, with the accessibility ids the
// wrapper derives.
package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/render"
	rendertemplate "github.com/goliatone/go-fieldwrap/pkg/render/template"
	gotemplate "github.com/goliatone/go-fieldwrap/pkg/render/template/gotemplate"
	"github.com/goliatone/go-fieldwrap/pkg/renderers/vanilla/controls"
)

// helpFormatMetadataKey marks Props.HelpText as pre-sanitized HTML. The hints
// loader sets it after running its bluemonday policy; any other value renders
// escaped.
const helpFormatMetadataKey = "helpFormat"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *controls.Registry
}

// WithTemplatesFS supplies an alternate chrome template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads chrome templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithControls injects a custom control registry.
func WithControls(registry *controls.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// Renderer renders one field wrapper per call.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *controls.Registry
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = controls.NewDefaultRegistry()
	}

	return &Renderer{templates: renderer, registry: registry}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Controls exposes the registry so callers can register custom controls.
func (r *Renderer) Controls() *controls.Registry {
	return r.registry
}

// Render produces the wrapper markup. The error region is always emitted
// while Props.ReserveErrorSpace holds (hidden via class when valid) and only
// while invalid otherwise.
func (r *Renderer) Render(_ context.Context, props field.Props, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if strings.TrimSpace(props.ID) == "" {
		props.ID = field.NewID()
	}

	slot := props.ControlContext()
	controlName := strings.TrimSpace(props.Control)
	if controlName == "" {
		controlName = controls.ControlInput
	}

	descriptor, ok := r.registry.Descriptor(controlName)
	if !ok {
		return nil, fmt.Errorf("vanilla renderer: control %q not registered for field %q", controlName, props.ID)
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, slot, props, renderValue(props, options)); err != nil {
		return nil, fmt.Errorf("vanilla renderer: render control %q for field %q: %w", controlName, props.ID, err)
	}

	data := map[string]any{
		"id":            props.ID,
		"label":         strings.TrimSpace(props.Label),
		"label_id":      slot.LabelID,
		"help_id":       field.HelpTextID(props.ID),
		"error_id":      field.ErrorTextID(props.ID),
		"required":      props.Required,
		"invalid":       props.Invalid(),
		"error_message": props.ErrorMessage,
		"show_error":    props.Invalid() || props.ReservesErrorSpace(),
		"control":       control.String(),
		"control_name":  controlName,
		"help_html":     helpHTML(props),
		"wrapper_class": options.ChromeClass(RegionWrapper, DefaultWrapperClass),
		"label_class":   options.ChromeClass(RegionLabel, DefaultLabelClass),
		"help_class":    options.ChromeClass(RegionHelp, DefaultHelpClass),
		"error_class":   options.ChromeClass(RegionError, DefaultErrorClass),
		"theme_style":   render.BuildThemeContext(options.Theme).CSSVarsStyle,
	}

	result, err := r.templates.RenderTemplate("templates/field.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Assets returns the stylesheets and scripts needed by the named controls
// plus the built-in chrome stylesheet.
func (r *Renderer) Assets(controlNames ...string) (stylesheets []string, scripts []controls.Script) {
	stylesheets, scripts = r.registry.Assets(controlNames)
	return append([]string{StylesheetName}, stylesheets...), scripts
}

func renderValue(props field.Props, options render.Options) string {
	value := props.Value
	if options.HasValue {
		value = options.Value
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func helpHTML(props field.Props) string {
	help := strings.TrimSpace(props.HelpText)
	if help == "" {
		return ""
	}
	if props.Metadata[helpFormatMetadataKey] == "html" {
		return help
	}
	return html.EscapeString(help)
}
