package render

import (
	theme "github.com/goliatone/go-theme"
)

// Options describe per-render data renderers may use without mutating the
// field props.
type Options struct {
	// Value overrides Props.Value for this render only. Useful when the
	// caller re-renders with a pending (not yet accepted) value.
	Value any

	// HasValue distinguishes an explicit nil override from "no override".
	HasValue bool

	// ChromeClasses overrides the default fw-* chrome class names keyed by
	// region ("wrapper", "label", "control", "help", "error").
	ChromeClasses map[string]string

	// Theme carries the optional go-theme renderer configuration; its tokens
	// and CSS variables flow into the wrapper chrome.
	Theme *theme.RendererConfig
}

// WithValue returns a copy of the options carrying a value override.
func (o Options) WithValue(value any) Options {
	o.Value = value
	o.HasValue = true
	return o
}

// ChromeClass resolves a region class, falling back to the provided default.
func (o Options) ChromeClass(region, fallback string) string {
	if cls, ok := o.ChromeClasses[region]; ok && cls != "" {
		return cls
	}
	return fallback
}
