package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"folio.dev/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages are the six routes the site mounts, keyed by template name
var Pages = []string{"home", "about", "projects", "skills", "resume", "contact"}

// PageData is passed to every page template
type PageData struct {
	Title   string
	Active  string
	Theme   models.ThemeState
	Profile models.Profile
	Data    any
}

// ResultView feeds the form result fragment
type ResultView struct {
	Success   bool
	Title     string
	Message   string
	Details   []string
	Link      string
	LinkLabel string
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
	md        goldmark.Markdown
}

// NewRenderer parses every page against the shared layout
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(Pages)),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}

	funcs := template.FuncMap{
		"markdown": r.Markdown,
		"join":     strings.Join,
		"has":      slices.Contains[[]string, string],
	}

	for _, page := range Pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		r.pages[page] = t
	}

	fragments, err := template.New("fragments").Funcs(funcs).ParseFS(templateFS, "templates/fragment_*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing fragments: %w", err)
	}
	r.fragments = fragments

	return r, nil
}

// Render writes a full page
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// RenderFragment writes a partial such as a form result
func (r *Renderer) RenderFragment(w io.Writer, name string, data any) error {
	return r.fragments.ExecuteTemplate(w, name, data)
}

// Markdown converts authored markdown to HTML. Content is trusted: it
// comes from the site's own dataset.
func (r *Renderer) Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
