package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var embeddedTemplates embed.FS

// Page template names.
const (
	PageForm    = "form.tmpl"
	PageConfirm = "confirm.tmpl"
	PageSuccess = "success.tmpl"
	PageError   = "error.tmpl"
)

// Load parses every embedded page and its shared layout blocks.
func Load() (*template.Template, error) {
	return template.New("pages").ParseFS(embeddedTemplates, "*.tmpl")
}

// MustLoad is Load that panics when a page fails to parse.
func MustLoad() *template.Template {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}
