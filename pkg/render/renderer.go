// Package render defines the renderer contract shared by the HTML and
// terminal field renderers, plus the per-render options (value override,
// chrome classes, theme).
package render

import (
	"context"

	"github.com/goliatone/go-fieldwrap/pkg/field"
)

// Renderer converts one field wrapper into a byte representation (HTML,
// terminal transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, props field.Props, options Options) ([]byte, error)
}
