// Package view holds the wiki's HTML templates and static assets.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
)

// Template names registered by Templates.
const (
	Page   = "view.html"
	Create = "create.html"
	Edit   = "edit.html"
	Error  = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded template. Page names and raw content are
// escaped by html/template; rendered markup must be passed as template.HTML.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// Static exposes the embedded assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// PageURL is the escaped path of a page, suitable for links, form actions and redirects.
func PageURL(name string) string {
	return "/" + url.PathEscape(name)
}
