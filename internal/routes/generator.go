// Package routes enumerates the statically pre-renderable pages of the site
// and derives the sitemap from them.
package routes

import (
	"net/url"
	"strings"
	"time"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
)

// Kind identifies the shape of a generated page
type Kind int

const (
	KindHome    Kind = iota // /{locale}
	KindProject             // /{locale}/projects/{slug}
	KindSection             // /{locale}/sections/{section}, deferred fragments
)

const (
	homePriority    = 1.0
	projectPriority = 0.8
	changeFrequency = "monthly"
)

// Page is one statically renderable route
type Page struct {
	Kind    Kind
	Locale  i18n.Locale
	Slug    string
	Section string
	Path    string
}

// SlugLister returns the project slugs of a locale in source order
type SlugLister interface {
	Slugs(loc i18n.Locale) []string
}

// Generator enumerates pages for every locale/slug combination
type Generator struct {
	site     models.SiteConfig
	projects SlugLister
	sections []string
}

// NewGenerator creates a Generator. sections are the names of the deferred
// homepage sections that get their own fragment route.
func NewGenerator(site models.SiteConfig, projects SlugLister, sections []string) *Generator {
	return &Generator{site: site, projects: projects, sections: sections}
}

// HomePath returns /{locale}
func HomePath(loc i18n.Locale) string {
	return "/" + string(loc)
}

// ProjectPath returns /{locale}/projects/{slug}
func ProjectPath(loc i18n.Locale, slug string) string {
	return "/" + string(loc) + "/projects/" + url.PathEscape(slug)
}

// SectionPath returns /{locale}/sections/{section}
func SectionPath(loc i18n.Locale, section string) string {
	return "/" + string(loc) + "/sections/" + url.PathEscape(section)
}

// Pages returns one homepage per locale followed by one detail page per
// locale and project. The default locale's slugs are the canonical set.
func (g *Generator) Pages() []Page {
	slugs := g.projects.Slugs(g.site.DefaultLocale)
	pages := make([]Page, 0, len(g.site.Locales)*(len(slugs)+1))
	for _, loc := range g.site.Locales {
		pages = append(pages, Page{Kind: KindHome, Locale: loc, Path: HomePath(loc)})
	}
	for _, loc := range g.site.Locales {
		for _, slug := range slugs {
			pages = append(pages, Page{Kind: KindProject, Locale: loc, Slug: slug, Path: ProjectPath(loc, slug)})
		}
	}
	return pages
}

// Fragments returns the deferred section routes of every locale
func (g *Generator) Fragments() []Page {
	pages := make([]Page, 0, len(g.site.Locales)*len(g.sections))
	for _, loc := range g.site.Locales {
		for _, name := range g.sections {
			pages = append(pages, Page{Kind: KindSection, Locale: loc, Section: name, Path: SectionPath(loc, name)})
		}
	}
	return pages
}

// Entry is one sitemap record
type Entry struct {
	URL             string    `json:"url"`
	LastModified    time.Time `json:"last_modified"`
	ChangeFrequency string    `json:"change_frequency"`
	Priority        float64   `json:"priority"`
}

// Sitemap lists every page with crawl metadata, stamped with now
func (g *Generator) Sitemap(now time.Time) []Entry {
	pages := g.Pages()
	entries := make([]Entry, 0, len(pages))
	for _, p := range pages {
		priority := projectPriority
		if p.Kind == KindHome {
			priority = homePriority
		}
		entries = append(entries, Entry{
			URL:             g.CanonicalURL(p.Path),
			LastModified:    now,
			ChangeFrequency: changeFrequency,
			Priority:        priority,
		})
	}
	return entries
}

// CanonicalURL joins the site origin and a path
func (g *Generator) CanonicalURL(path string) string {
	return strings.TrimRight(g.site.URL, "/") + path
}
