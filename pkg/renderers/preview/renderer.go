// Package preview renders a configuration into a static HTML snapshot of
// the status window: one navigation state, variables substituted
// server-side. Editors embed the result in an iframe and re-render on every
// change.
package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	rendertemplate "github.com/roleplaykit/go-statuswin/pkg/render/template"
	"github.com/roleplaykit/go-statuswin/pkg/render/template/pongo"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

const templateName = "templates/page.tmpl"

// Option customises the renderer configuration.
type Option func(*cfg)

type cfg struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	placeholders     bool
}

// WithTemplatesFS supplies an alternate page template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(c *cfg) {
		if files != nil {
			c.templateFS = files
		}
	}
}

// WithTemplatesDir loads the page template from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(c *cfg) {
		if path != "" {
			c.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(c *cfg) {
		if renderer != nil {
			c.templateRenderer = renderer
		}
	}
}

// WithPlaceholderBindings fills absent bindings with generated placeholder
// values, the way the editor previews an unbound template.
func WithPlaceholderBindings() Option {
	return func(c *cfg) {
		c.placeholders = true
	}
}

// Renderer produces the static HTML snapshot.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	placeholders bool
}

// New constructs a preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	c := cfg{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&c)
	}

	templates := c.templateRenderer
	if templates == nil {
		engine, err := pongo.New(pongo.WithFS(c.templateFS))
		if err != nil {
			return nil, fmt.Errorf("preview renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, placeholders: c.placeholders}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "preview"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the snapshot for the requested navigation state.
func (r *Renderer) Render(ctx context.Context, doc *config.Document, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("preview renderer: document is required")
	}

	vars := options.Bindings
	if r.placeholders {
		vars = mergePlaceholders(doc, vars)
	}
	state := options.NavState(scene.NewState(doc))
	tree := scene.Render(doc, vars, state)

	data := map[string]any{
		"title":           doc.UILabels.MainWindowTitle,
		"font_import_url": doc.Font.ImportURL,
		"font_size":       doc.Font.FontSize,
		"width":           doc.Size.Width,
		"height":          doc.Size.Height,
		"window_html":     RenderHTML(tree),
	}
	if options.Theme != nil {
		data["css_vars_style"] = render.CSSVarsStyle(options.Theme.CSSVars)
		if options.Theme.AssetURL != nil {
			data["theme_stylesheet"] = options.Theme.AssetURL("statuswin.stylesheet")
		}
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render page: %w", err)
	}
	return []byte(rendered), nil
}

// mergePlaceholders lays explicit bindings over the generated preview set so
// partially bound documents still show something everywhere.
func mergePlaceholders(doc *config.Document, explicit bindings.Bindings) bindings.Bindings {
	merged := bindings.Preview(doc)
	for name, value := range explicit {
		merged[name] = value
	}
	return merged
}
