// Package compiler coordinates the pipeline from configuration source to
// rendered output: load, normalize, resolve a theme, and hand off to the
// selected renderer. Callers can start with New() and defaults or inject
// every dependency.
package compiler

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/export"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/preview"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/tui"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

const defaultRendererName = "export"

// Option customises the compiler configuration.
type Option func(*Compiler)

// WithRegistry injects a renderer registry. The built-in renderers are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(c *Compiler) {
		c.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(c *Compiler) {
		c.defaultRenderer = name
	}
}

// WithThemeSelector injects a theme selector. The built-in palette is used
// when none is configured.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(c *Compiler) {
		c.themeSelector = selector
	}
}

// WithDefaultTheme applies a theme to every request that does not name one.
func WithDefaultTheme(name, variant string) Option {
	return func(c *Compiler) {
		c.defaultTheme = name
		c.defaultVariant = variant
	}
}

// WithLoaderOptions forwards options to the configuration loader.
func WithLoaderOptions(options ...config.LoaderOption) Option {
	return func(c *Compiler) {
		c.loaderOpts = append(c.loaderOpts, options...)
	}
}

// Compiler coordinates loading, normalization, theming, and rendering.
type Compiler struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	loaderOpts      []config.LoaderOption

	initialiseErr error
}

// New constructs a Compiler applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Compiler {
	c := &Compiler{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Compiler) applyDefaults() {
	if c.themeSelector == nil {
		c.themeSelector = render.NewStaticSelector(render.DefaultManifest())
	}
	if c.registry != nil {
		return
	}

	c.registry = render.NewRegistry()

	exportRenderer, err := export.New()
	if err != nil {
		c.initialiseErr = fmt.Errorf("compiler: initialise export renderer: %w", err)
		return
	}
	previewRenderer, err := preview.New(preview.WithPlaceholderBindings())
	if err != nil {
		c.initialiseErr = fmt.Errorf("compiler: initialise preview renderer: %w", err)
		return
	}
	tuiRenderer, err := tui.New()
	if err != nil {
		c.initialiseErr = fmt.Errorf("compiler: initialise tui renderer: %w", err)
		return
	}

	for _, renderer := range []render.Renderer{exportRenderer, previewRenderer, tuiRenderer} {
		if err := c.registry.Register(renderer); err != nil {
			c.initialiseErr = fmt.Errorf("compiler: register renderer: %w", err)
			return
		}
	}
}

// Request describes the inputs required to render a status window.
type Request struct {
	// Source identifies where the configuration lives. Optional when
	// Document is supplied.
	Source config.Source

	// Document bypasses the loader when the caller already holds a parsed
	// configuration. It is normalized before rendering either way.
	Document *config.Document

	// Renderer names the renderer to use. Empty falls back to the
	// configured default.
	Renderer string

	// Bindings carries the variable values for this render.
	Bindings bindings.Bindings

	// Nav pins the navigation state. Nil starts from the initial state.
	Nav *scene.State

	// ThemeName and ThemeVariant select a theme. Both empty means the
	// compiler default (or no theme at all when none is configured).
	ThemeName    string
	ThemeVariant string
}

// Generate executes the load, normalize, theme, render sequence and returns
// the rendered bytes.
func (c *Compiler) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("compiler: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := c.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	doc = config.Normalize(doc)

	themeCfg, err := c.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	renderer, err := c.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, render.Options{
		Bindings: req.Bindings,
		Nav:      req.Nav,
		Theme:    themeCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("compiler: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the names available to Generate requests.
func (c *Compiler) Renderers() []string {
	if c.registry == nil {
		return nil
	}
	return c.registry.List()
}

func (c *Compiler) resolveDocument(ctx context.Context, req Request) (*config.Document, error) {
	if req.Document != nil {
		return req.Document, nil
	}
	if req.Source == nil {
		return nil, errors.New("compiler: source or document is required")
	}
	doc, err := config.Load(ctx, req.Source, c.loaderOpts...)
	if err != nil {
		return nil, fmt.Errorf("compiler: load configuration: %w", err)
	}
	return doc, nil
}

func (c *Compiler) resolveTheme(req Request) (*theme.RendererConfig, error) {
	name := req.ThemeName
	variant := req.ThemeVariant
	if name == "" {
		name = c.defaultTheme
		if variant == "" {
			variant = c.defaultVariant
		}
	}
	if name == "" {
		return nil, nil
	}
	return render.ResolveTheme(c.themeSelector, name, variant)
}

func (c *Compiler) rendererFor(name string) (render.Renderer, error) {
	if c.registry == nil {
		return nil, errors.New("compiler: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = c.defaultRenderer
	}
	if target != "" {
		renderer, err := c.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("compiler: renderer %q: %w", name, err)
		}
	}

	names := c.registry.List()
	if len(names) == 0 {
		return nil, errors.New("compiler: no renderers registered")
	}
	renderer, err := c.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("compiler: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}
