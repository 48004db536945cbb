// Package web serves the browser UI for the explain endpoint.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

func Handler() http.Handler {
	static, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(static)
}
