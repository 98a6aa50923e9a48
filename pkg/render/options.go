package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

// Options carry per-request data renderers consume without mutating the
// document.
type Options struct {
	// Bindings supplies the variable values for this render. Nil bindings
	// render every variable as blank; preview callers usually pass the
	// generated placeholder set instead.
	Bindings bindings.Bindings
	// Nav pins the navigation state to render. When nil, renderers start
	// from the document's initial state (character tab, first roster
	// entry, main map).
	Nav *scene.State
	// Theme overrides the built-in palette with a resolved theme
	// configuration. Renderers fold its CSS variables into the emitted
	// document and consult its AssetURL resolver for replaceable assets.
	Theme *theme.RendererConfig
}

// NavState resolves the effective navigation state for a document.
func (o Options) NavState(docState scene.State) scene.State {
	if o.Nav != nil {
		return *o.Nav
	}
	return docState
}
