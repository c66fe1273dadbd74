package page

import (
	"html/template"
	"strconv"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
	"jeremiassnts.dev/internal/services"
)

// Localizer gives templates access to translated strings of one locale
type Localizer struct {
	Locale  i18n.Locale
	catalog *i18n.Catalog
}

// T translates key
func (l Localizer) T(key string) string {
	return l.catalog.T(l.Locale, key)
}

// Tf translates key with {name} substitutions
func (l Localizer) Tf(key string, args ...string) string {
	return l.catalog.Tf(l.Locale, key, args...)
}

// More renders the "+N more" suffix of a truncated tech list
func (l Localizer) More(n int) string {
	return l.Tf("projects.more", "count", strconv.Itoa(n))
}

// HomeView is the body of the homepage
type HomeView struct {
	Localizer
	Sections []SectionSlot
}

// SectionSlot is a homepage section, either rendered or waiting on its fragment
type SectionSlot struct {
	Name    string
	HTML    template.HTML
	Pending bool
	Src     string
}

// PlaceholderView feeds the section placeholder template
type PlaceholderView struct {
	Localizer
	Name string
	Src  string
}

// ProjectCard is a project as listed on the homepage
type ProjectCard struct {
	Project models.Project
	URL     string
	Tech    []string
	More    int
}

// HeroView feeds the hero section
type HeroView struct {
	Localizer
	Featured []ProjectCard
}

// ProjectsView feeds the projects section
type ProjectsView struct {
	Localizer
	Cards []ProjectCard
}

// AboutView feeds the about section
type AboutView struct {
	Localizer
	Profile   models.Profile
	Available bool
}

// TechnologiesView feeds the technologies section
type TechnologiesView struct {
	Localizer
	Groups []services.TechnologyGroup
}

// ContactView feeds the contact section
type ContactView struct {
	Localizer
	Profile   models.Profile
	Links     []models.SocialLink
	Available bool
}

// Action is a button in the project action row
type Action struct {
	Kind  string
	Label string
	URL   string
}

// NarrativeBlock is one titled paragraph of a project write-up
type NarrativeBlock struct {
	Heading string
	Body    string
}

// Metric is one cell of the metrics grid
type Metric struct {
	Label string
	Value string
}

// ProjectView is the body of a project detail page
type ProjectView struct {
	Localizer
	Project     models.Project
	BackURL     string
	StatusLabel string
	Actions     []Action
	Narrative   []NarrativeBlock
	Metrics     []Metric
}

// NotFoundView is the body of the not-found fallback
type NotFoundView struct {
	Localizer
	BackURL string
}
