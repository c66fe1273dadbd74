package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet and scripts, rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"asset": func(p string) string {
		return "/static/" + strings.TrimPrefix(p, "/")
	},
}

type templateSet struct {
	sections *template.Template
	pages    map[string]*template.Template
}

// parseTemplates builds the shared layout and section templates, then clones
// them once per page kind so each page can define its own "content"
func parseTemplates() (*templateSet, error) {
	base, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/sections.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	set := &templateSet{pages: make(map[string]*template.Template)}
	for _, name := range []string{templateHome, templateProject, templateNotFound} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		set.pages[name] = t
	}
	set.sections = base
	return set, nil
}

func (s *templateSet) page(w io.Writer, doc *Document) error {
	t, ok := s.pages[doc.Template]
	if !ok {
		return fmt.Errorf("unknown page template %q", doc.Template)
	}
	return t.ExecuteTemplate(w, "layout", doc)
}

func (s *templateSet) fragment(name string, data any) (template.HTML, error) {
	var b strings.Builder
	if err := s.sections.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
