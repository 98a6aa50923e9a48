package render

import (
	"context"

	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// Renderer turns a configuration document into a byte representation: the
// interactive HTML preview, the exported standalone document, or plain text
// for terminals.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc *config.Document, options Options) ([]byte, error)
}
