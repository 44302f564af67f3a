package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatBureau/devops-portfolio/internal/blog"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"meta": func(p blog.Post) string {
		return strings.Join(append([]string{p.Date}, p.Tags...), " • ")
	},
}

// Renderer builds the site's HTML pages. Header and footer fragments are read
// from viewsDir on every render.
type Renderer struct {
	viewsDir  string
	siteTitle string
	tmpl      *template.Template
}

func NewRenderer(viewsDir, siteTitle string) (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{viewsDir: viewsDir, siteTitle: siteTitle, tmpl: tmpl}, nil
}

// Layout wraps a trusted HTML fragment with the site header and footer.
func (r *Renderer) Layout(w io.Writer, content []byte) error {
	header, err := r.fragment("header.html")
	if err != nil {
		return err
	}
	footer, err := r.fragment("footer.html")
	if err != nil {
		return err
	}
	return r.execute(w, "layout", struct {
		Header, Content, Footer template.HTML
	}{header, template.HTML(content), footer})
}

func (r *Renderer) BlogIndex(w io.Writer, posts []blog.Post) error {
	return r.execute(w, "blog_index", struct {
		SiteTitle string
		Posts     []blog.Post
	}{r.siteTitle, posts})
}

func (r *Renderer) BlogPost(w io.Writer, post blog.Post) error {
	return r.execute(w, "blog_post", post)
}

func (r *Renderer) fragment(name string) (template.HTML, error) {
	data, err := os.ReadFile(filepath.Join(r.viewsDir, name))
	if err != nil {
		return "", fmt.Errorf("reading view %s: %w", name, err)
	}
	return template.HTML(data), nil
}

// execute renders into a buffer first so a failed render writes nothing.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
