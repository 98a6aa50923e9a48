package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page template for callers that want to
// extend the default layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
