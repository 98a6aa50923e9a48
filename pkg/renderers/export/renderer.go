// Package export emits the self-contained HTML document a role-play host
// embeds: the configuration travels as an inline JSON payload, and an inline
// script rebuilds the window client-side whenever the host pushes new
// variable values through onUpdateData.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	rendertemplate "github.com/roleplaykit/go-statuswin/pkg/render/template"
	"github.com/roleplaykit/go-statuswin/pkg/render/template/pongo"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

const (
	templateName = "templates/page.tmpl"
	runtimePath  = "assets/statuswin-runtime.js"
)

// Option customises the renderer configuration.
type Option func(*cfg)

type cfg struct {
	templateFS       fs.FS
	assetsFS         fs.FS
	templateRenderer rendertemplate.TemplateRenderer
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

// WithAssetsFS overrides the embedded runtime script bundle. The replacement
// must provide assets/statuswin-runtime.js.
func WithAssetsFS(files fs.FS) Option {
	return func(c *cfg) {
		if files != nil {
			c.assetsFS = files
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

// Renderer produces exported standalone documents.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	runtime   []byte
}

// New constructs an export renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	c := cfg{templateFS: TemplatesFS(), assetsFS: AssetsFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&c)
	}

	runtime, err := fs.ReadFile(c.assetsFS, runtimePath)
	if err != nil {
		return nil, fmt.Errorf("export renderer: runtime script %q not found: %w", runtimePath, err)
	}

	templates := c.templateRenderer
	if templates == nil {
		engine, err := pongo.New(pongo.WithFS(c.templateFS))
		if err != nil {
			return nil, fmt.Errorf("export renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, runtime: runtime}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "export"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the standalone document. Bindings and navigation state are
// ignored: the exported runtime owns both and starts from the initial state
// with every variable blank until the host pushes data. A resolved theme
// contributes its CSS variables to the emitted stylesheet.
func (r *Renderer) Render(ctx context.Context, doc *config.Document, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("export renderer: document is required")
	}

	// json.Marshal escapes <, > and & inside strings, so the payload cannot
	// terminate the surrounding script element early.
	configJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("export renderer: marshal config: %w", err)
	}
	geometryJSON, err := json.Marshal(scene.GeometryConstants())
	if err != nil {
		return nil, fmt.Errorf("export renderer: marshal geometry: %w", err)
	}

	data := map[string]any{
		"title":           doc.UILabels.MainWindowTitle,
		"font_import_url": doc.Font.ImportURL,
		"font_family":     doc.Font.FontFamily,
		"font_size":       doc.Font.FontSize,
		"width":           doc.Size.Width,
		"height":          doc.Size.Height,
		"config_json":     string(configJSON),
		"geometry_json":   string(geometryJSON),
		"runtime_js":      string(r.runtime),
	}
	if options.Theme != nil {
		data["css_vars_style"] = render.CSSVarsStyle(options.Theme.CSSVars)
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("export renderer: render page: %w", err)
	}
	return []byte(rendered), nil
}
