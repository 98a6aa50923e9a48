package statuswin

import (
	"io/fs"

	"github.com/roleplaykit/go-statuswin/pkg/renderers/export"
)

// RuntimeAssetsFS exposes the browser runtime script that exported documents
// embed, so Go applications can also serve it standalone.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(statuswin.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(export.AssetsFS(), "assets")
	if err != nil {
		return export.AssetsFS()
	}
	return sub
}
