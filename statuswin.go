package statuswin

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/compiler"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// Request aliases the compiler request so callers only need the root package
// for the common path.
type Request = compiler.Request

// Bindings carries the current variable values for a render.
type Bindings = bindings.Bindings

// NewCompiler exposes the compiler constructor from the top-level module.
func NewCompiler(options ...compiler.Option) *compiler.Compiler {
	return compiler.New(options...)
}

// GenerateHTML loads the configuration source, applies the variable bindings,
// and renders the status window with the named renderer. It is the simplest
// entry point for callers that just want output bytes.
func GenerateHTML(ctx context.Context, source config.Source, vars Bindings, rendererName string, options ...compiler.Option) ([]byte, error) {
	c := compiler.New(options...)
	return c.Generate(ctx, compiler.Request{
		Source:   source,
		Bindings: vars,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromDocument renders using a pre-loaded document, bypassing the
// loader stage while still delegating to the compiler.
func GenerateHTMLFromDocument(ctx context.Context, doc config.Document, vars Bindings, rendererName string, options ...compiler.Option) ([]byte, error) {
	c := compiler.New(options...)
	return c.Generate(ctx, compiler.Request{
		Document: &doc,
		Bindings: vars,
		Renderer: rendererName,
	})
}

// WithDefaultRenderer forwards the default renderer name to the compiler.
func WithDefaultRenderer(name string) compiler.Option {
	return compiler.WithDefaultRenderer(name)
}

// WithThemeSelector passes a go-theme selector through to the compiler so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) compiler.Option {
	return compiler.WithThemeSelector(selector)
}

// WithDefaultTheme applies a theme to every request that does not name one.
func WithDefaultTheme(name, variant string) compiler.Option {
	return compiler.WithDefaultTheme(name, variant)
}
