// Package fieldwrap exposes the library's quick-start surface: type aliases
// for the core field/form packages and a one-call HTML render path that wires
// a wrapper, an optional aggregator, and the vanilla renderer together.
package fieldwrap

import (
	"context"

	"github.com/goliatone/go-fieldwrap/pkg/field"
	"github.com/goliatone/go-fieldwrap/pkg/form"
	"github.com/goliatone/go-fieldwrap/pkg/render"
	"github.com/goliatone/go-fieldwrap/pkg/renderers/vanilla"
)

// Props aliases the field wrapper inputs for callers that only import the
// root package.
type Props = field.Props

// ErrorReporter aliases the aggregator contract.
type ErrorReporter = form.ErrorReporter

// RenderOptions aliases the per-render options.
type RenderOptions = render.Options

// NewErrorSet exposes the reference aggregator constructor.
func NewErrorSet() *form.ErrorSet {
	return form.NewErrorSet()
}

// NewWrapper exposes the field wrapper constructor.
func NewWrapper(props Props, options ...field.Option) *field.Wrapper {
	return field.New(props, options...)
}

// RenderHTML mounts a wrapper for props against the optional reporter and
// renders it with the vanilla renderer. The wrapper stays mounted so the
// reporter keeps tracking the field; callers that want the registration
// withdrawn call Unmount on the returned wrapper. On error the wrapper is
// unmounted before returning, so the reporter never retains a field the
// caller has no handle for.
func RenderHTML(ctx context.Context, props Props, reporter ErrorReporter, options RenderOptions) ([]byte, *field.Wrapper, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, nil, err
	}

	var wrapperOptions []field.Option
	if reporter != nil {
		wrapperOptions = append(wrapperOptions, field.WithReporter(reporter))
	}
	wrapper := field.New(props, wrapperOptions...)
	wrapper.Mount()

	markup, err := renderer.Render(ctx, wrapper.Props(), options)
	if err != nil {
		wrapper.Unmount()
		return nil, nil, err
	}
	return markup, wrapper, nil
}
