// Package render writes the keyboard and its controls as HTML markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/Masterminds/sprig"

	"github.com/vsariola/toneboard/keys"
	"github.com/vsariola/toneboard/options"
)

type (
	Renderer struct {
		Template *template.Template
	}

	// Page is the data of a complete document. Empty Title and Stylesheet
	// fall back to the defaults of the template.
	Page struct {
		Title      string
		Stylesheet string
		Scripts    []string
		Keys       []keys.Group
		Options    []options.Group
	}
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultScripts are loaded by the page: the synthesis library and the script
// defining synthKeyPress and updateOscillator.
var DefaultScripts = []string{"https://unpkg.com/tone@14.7.77/build/Tone.js", "synth.js"}

// New returns a renderer using the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	return &Renderer{Template: tmpl}, nil
}

// NewFromTemplates returns a renderer using the templates in a directory,
// which must define the same templates as the embedded ones.
func NewFromTemplates(templateDirectory string) (*Renderer, error) {
	globPtrn := filepath.Join(templateDirectory, "*.html")
	tmpl, err := template.New("base").Funcs(sprig.HtmlFuncMap()).ParseGlob(globPtrn)
	if err != nil {
		return nil, fmt.Errorf(`could not create template based on directory "%v": %v`, templateDirectory, err)
	}
	return &Renderer{Template: tmpl}, nil
}

// Keys renders the key groups.
func (r *Renderer) Keys(groups []keys.Group) (string, error) {
	return r.execute("keys", groups)
}

// Options renders the control groups.
func (r *Renderer) Options(groups []options.Group) (string, error) {
	return r.execute("options", groups)
}

// Page renders a complete document to w.
func (r *Renderer) Page(w io.Writer, page Page) error {
	if err := r.Template.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf(`could not execute template "page": %v`, err)
	}
	return nil
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Template.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf(`could not execute template "%v": %v`, name, err)
	}
	return buf.String(), nil
}
