package page

import (
	"html/template"
	"strings"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
	"jeremiassnts.dev/internal/routes"
)

const (
	templateHome     = "home"
	templateProject  = "project"
	templateNotFound = "notfound"
	templateFragment = "fragment"
)

// Theme values accepted from the preference cookie
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ogLocales = map[i18n.Locale]string{
	"en": "en_US",
	"pt": "pt_BR",
}

// Document is a composed page ready to render
type Document struct {
	Localizer
	Template  string
	Status    int
	Path      string
	Theme     string
	Year      int
	Site      models.SiteConfig
	Meta      Meta
	Languages []LanguageLink
	Social    []models.SocialLink
	Body      any

	// Partial is set when a section load did not finish before the request
	// context ended and its placeholder was served instead
	Partial bool

	// Fragment holds the markup of a section fragment, which renders without
	// the layout
	Fragment template.HTML
}

// Meta is the head metadata of a page
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGType      string
	OGLocale    string
	OGImage     string
	NoIndex     bool
	Alternates  []Alternate
}

// Alternate is an hreflang link to the same page in another locale
type Alternate struct {
	Hreflang string
	Href     string
}

// LanguageLink is an entry of the language switcher
type LanguageLink struct {
	Locale i18n.Locale
	Label  string
	Href   string
	Active bool
}

// Home returns the homepage path of the document's locale
func (d *Document) Home() string {
	return routes.HomePath(d.Locale)
}

// NextTheme is the theme the toggle switches to
func (d *Document) NextTheme() string {
	if d.Theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsFragment reports whether the document renders without the layout
func (d *Document) IsFragment() bool {
	return d.Template == templateFragment
}

func ogLocale(loc i18n.Locale) string {
	if l, ok := ogLocales[loc]; ok {
		return l
	}
	return string(loc)
}

func absURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + path
}
