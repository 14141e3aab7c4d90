// Package template declares the template-engine seam renderers depend on so
// the concrete engine stays swappable.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Renderers program against this seam; the default implementation
// lives in the gotemplate subpackage.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
