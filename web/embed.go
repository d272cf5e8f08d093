// Package web holds the bundled single-page front end.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// StaticFS returns the bundled static assets rooted at the static directory
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// "static" is embedded above, so Sub cannot fail
		panic(err)
	}
	return sub
}
