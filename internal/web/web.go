// Package web embeds the site templates and stylesheet and installs them on a
// gin engine.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/innov8x/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	IndexTemplate    = "index.html"
	RegisterTemplate = "register.html"
	SponsorTemplate  = "sponsor.html"
)

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"navLinks": content.NavLinks,
		"pad2": func(n int64) string {
			return fmt.Sprintf("%02d", n)
		},
	}
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Install registers the templates and the /static file server on r.
func Install(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))

	return nil
}
