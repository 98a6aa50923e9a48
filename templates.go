package statuswin

import (
	"io/fs"

	"github.com/roleplaykit/go-statuswin/pkg/renderers/preview"
)

// EmbeddedTemplates exposes the built-in preview page template so callers can
// reuse or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	fsys := preview.TemplatesFS()
	return fsys
}
