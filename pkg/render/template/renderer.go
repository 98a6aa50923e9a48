// Package template defines the engine seam the HTML renderers depend on, so
// page layout stays swappable without touching the rendering pipeline.
package template

// TemplateRenderer is the contract the pongo engine fulfils. Renderers ask
// for named templates from their embedded bundles; RenderString covers
// one-off snippets in tests and tooling.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
