package export

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/statuswin-runtime.js
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded page template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded runtime script.
func AssetsFS() fs.FS {
	return embeddedAssets
}
