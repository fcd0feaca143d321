// Package static embeds the web stylesheet.
package static

import (
	"embed"
	"io/fs"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS

// Assets returns the asset tree served under /static/.
func Assets() (fs.FS, error) {
	return fs.Sub(FS, ".")
}
