// Package page composes the homepage, project detail, section fragments and
// the not-found fallback from content, then renders them with the embedded
// templates.
package page

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
	"jeremiassnts.dev/internal/routes"
	"jeremiassnts.dev/internal/services"
)

// Sections lists the homepage sections in display order
var Sections = []string{"hero", "projects", "about", "technologies", "contact"}

// cardTechLimit is how many tech items a project card lists before "+N more"
const cardTechLimit = 4

// ErrUnknownSection is returned for a fragment request naming no section
var ErrUnknownSection = errors.New("unknown section")

// DeferredSections returns the sections that may load after the first paint
func DeferredSections() []string {
	return slices.Clone(Sections[1:])
}

// Options controls composition
type Options struct {
	// DeferSections emits placeholders for every section after the first
	DeferSections bool
	// Now defaults to time.Now
	Now func() time.Time
	// Log receives section load failures; defaults to the standard logger
	Log *logrus.Logger
}

// Composer builds documents for every page of the site
type Composer struct {
	site         models.SiteConfig
	content      services.ContentSource
	projects     *services.ProjectService
	technologies *services.TechnologyService
	catalog      *i18n.Catalog
	resolver     *i18n.Resolver
	templates    *templateSet
	opts         Options

	// render executes a section template
	render func(name string, data any) (template.HTML, error)
}

// NewComposer parses the templates and creates a Composer
func NewComposer(site models.SiteConfig, content services.ContentSource, catalog *i18n.Catalog, resolver *i18n.Resolver, opts Options) (*Composer, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &Composer{
		site:         site,
		content:      content,
		projects:     services.NewProjectService(content),
		technologies: services.NewTechnologyService(content),
		catalog:      catalog,
		resolver:     resolver,
		templates:    tmpl,
		opts:         opts,
		render:       tmpl.fragment,
	}, nil
}

func (c *Composer) localizer(loc i18n.Locale) Localizer {
	return Localizer{Locale: loc, catalog: c.catalog}
}

// newDocument fills the layout data shared by every full page
func (c *Composer) newDocument(loc i18n.Locale, tmpl, path string, social []models.SocialLink) *Document {
	l := c.localizer(loc)
	doc := &Document{
		Localizer: l,
		Template:  tmpl,
		Status:    http.StatusOK,
		Path:      path,
		Year:      c.opts.Now().Year(),
		Site:      c.site,
		Social:    social,
		Meta: Meta{
			Title:       l.T("metadata.title"),
			Description: l.T("metadata.description"),
			Canonical:   absURL(c.site.URL, path),
			OGType:      "website",
			OGLocale:    ogLocale(loc),
			OGImage:     absURL(c.site.URL, c.site.OGImage),
		},
	}
	for _, other := range c.resolver.Locales() {
		href := c.resolver.Switch(path, other)
		doc.Languages = append(doc.Languages, LanguageLink{
			Locale: other,
			Label:  strings.ToUpper(string(other)),
			Href:   href,
			Active: other == loc,
		})
		doc.Meta.Alternates = append(doc.Meta.Alternates, Alternate{
			Hreflang: string(other),
			Href:     absURL(c.site.URL, href),
		})
	}
	doc.Meta.Alternates = append(doc.Meta.Alternates, Alternate{
		Hreflang: "x-default",
		Href:     absURL(c.site.URL, c.resolver.Switch(path, c.resolver.Default())),
	})
	return doc
}

// Home composes the homepage. The first section is always rendered inline;
// the rest are placeholders when deferral is on.
func (c *Composer) Home(ctx context.Context, loc i18n.Locale) (*Document, error) {
	loc = c.resolver.Or(loc)
	doc := c.newDocument(loc, templateHome, routes.HomePath(loc), c.profileLinks(loc))

	slots := make([]SectionSlot, len(Sections))
	tasks := make([]*Task, len(Sections))
	for i, name := range Sections {
		slots[i] = SectionSlot{Name: name, Src: routes.SectionPath(loc, name)}
		if i > 0 && c.opts.DeferSections {
			slots[i].Pending = true
			continue
		}
		tasks[i] = c.startSection(ctx, loc, name)
	}

	for i, t := range tasks {
		if t == nil {
			continue
		}
		html, ok := t.Await(ctx)
		if ok {
			slots[i].HTML = html
			continue
		}
		c.logFailure(loc, slots[i].Name, t)
		slots[i].Pending = true
		doc.Partial = true
	}

	for i := range slots {
		if !slots[i].Pending {
			continue
		}
		html, err := c.placeholder(loc, slots[i].Name)
		if err != nil {
			return nil, err
		}
		slots[i].HTML = html
	}

	doc.Body = HomeView{Localizer: doc.Localizer, Sections: slots}
	return doc, nil
}

// Section composes the fragment of one homepage section. A load that fails or
// does not finish before ctx ends yields the placeholder again.
func (c *Composer) Section(ctx context.Context, loc i18n.Locale, name string) (*Document, error) {
	if !slices.Contains(Sections, name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
	}
	loc = c.resolver.Or(loc)
	doc := &Document{
		Localizer: c.localizer(loc),
		Template:  templateFragment,
		Status:    http.StatusOK,
		Path:      routes.SectionPath(loc, name),
		Site:      c.site,
	}

	t := c.startSection(ctx, loc, name)
	html, ok := t.Await(ctx)
	if !ok {
		c.logFailure(loc, name, t)
		var err error
		if html, err = c.placeholder(loc, name); err != nil {
			return nil, err
		}
		doc.Partial = true
	}
	doc.Fragment = html
	return doc, nil
}

func (c *Composer) startSection(ctx context.Context, loc i18n.Locale, name string) *Task {
	return startTask(ctx, func(context.Context) (template.HTML, error) {
		return c.render("section-"+name, c.sectionData(loc, name))
	})
}

// logFailure records a finished but failed section load. The section itself
// stays a placeholder, same as a load still in flight.
func (c *Composer) logFailure(loc i18n.Locale, name string, t *Task) {
	if err := t.Err(); err != nil {
		c.opts.Log.WithFields(logrus.Fields{
			"locale":  loc,
			"section": name,
		}).WithError(err).Error("Section failed to load")
	}
}

func (c *Composer) profileLinks(loc i18n.Locale) []models.SocialLink {
	return c.content.ProfileFor(loc).Social.Links()
}

// authorLinks comes from the site config so the fallback page reads no content
func (c *Composer) authorLinks() []models.SocialLink {
	return models.SocialLinks{GitHub: c.site.Author.GitHub, LinkedIn: c.site.Author.LinkedIn}.Links()
}

func (c *Composer) placeholder(loc i18n.Locale, name string) (template.HTML, error) {
	return c.templates.fragment("section-placeholder", PlaceholderView{
		Localizer: c.localizer(loc),
		Name:      name,
		Src:       routes.SectionPath(loc, name),
	})
}

// sectionData sources each section independently from the content store
func (c *Composer) sectionData(loc i18n.Locale, name string) any {
	l := c.localizer(loc)
	switch name {
	case "hero":
		return HeroView{Localizer: l, Featured: c.cards(loc, c.projects.Featured(loc))}
	case "projects":
		return ProjectsView{Localizer: l, Cards: c.cards(loc, c.projects.All(loc))}
	case "about":
		p := c.content.ProfileFor(loc)
		return AboutView{Localizer: l, Profile: p, Available: p.Availability == models.Available}
	case "technologies":
		return TechnologiesView{Localizer: l, Groups: c.technologies.Grouped()}
	case "contact":
		p := c.content.ProfileFor(loc)
		return ContactView{
			Localizer: l,
			Profile:   p,
			Links:     p.Social.Links(),
			Available: p.Availability == models.Available,
		}
	}
	return l
}

func (c *Composer) cards(loc i18n.Locale, projects []models.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		card := ProjectCard{Project: p, URL: routes.ProjectPath(loc, p.Slug), Tech: p.TechStack}
		if len(p.TechStack) > cardTechLimit {
			card.Tech = p.TechStack[:cardTechLimit]
			card.More = len(p.TechStack) - cardTechLimit
		}
		cards = append(cards, card)
	}
	return cards
}

// Project composes the detail page for slug, or the not-found fallback
// when the locale has no such project
func (c *Composer) Project(loc i18n.Locale, slug string) *Document {
	loc = c.resolver.Or(loc)
	p, err := c.projects.BySlug(loc, slug)
	if err != nil {
		return c.NotFound(loc)
	}

	doc := c.newDocument(loc, templateProject, routes.ProjectPath(loc, p.Slug), c.profileLinks(loc))
	l := doc.Localizer
	doc.Meta.Title = p.Title + " | " + l.T("projects.title")
	doc.Meta.Description = p.ShortDescription
	doc.Meta.OGType = "article"
	if p.HeroImage != nil {
		doc.Meta.OGImage = absURL(c.site.URL, p.HeroImage.Src)
	}

	doc.Body = ProjectView{
		Localizer:   l,
		Project:     *p,
		BackURL:     routes.HomePath(loc) + "#projects",
		StatusLabel: l.T("projects.status." + string(p.Status)),
		Actions:     actions(l, p),
		Narrative:   narrative(l, p),
		Metrics:     metrics(l, p.Metrics),
	}
	return doc
}

func actions(l Localizer, p *models.Project) []Action {
	var out []Action
	if p.LiveURL != "" {
		out = append(out, Action{Kind: "live", Label: l.T("projects.liveDemo"), URL: p.LiveURL})
	}
	if p.GitHubURL != "" {
		out = append(out, Action{Kind: "source", Label: l.T("projects.sourceCode"), URL: p.GitHubURL})
	}
	return out
}

func narrative(l Localizer, p *models.Project) []NarrativeBlock {
	n := p.Narrative
	if n == nil {
		return []NarrativeBlock{{Heading: l.T("projects.overview"), Body: p.Description}}
	}
	blocks := []NarrativeBlock{
		{Heading: l.T("projects.theProblem"), Body: n.Problem},
		{Heading: l.T("projects.theSolution"), Body: n.Solution},
	}
	if n.Outcome != "" {
		blocks = append(blocks, NarrativeBlock{Heading: l.T("projects.theOutcome"), Body: n.Outcome})
	}
	return blocks
}

func metrics(l Localizer, m *models.ProjectMetrics) []Metric {
	if m.Empty() {
		return nil
	}
	var out []Metric
	for _, kv := range [][2]string{
		{"users", m.Users},
		{"performance", m.Performance},
		{"impact", m.Impact},
	} {
		if kv[1] != "" {
			out = append(out, Metric{Label: l.T("projects.metrics." + kv[0]), Value: kv[1]})
		}
	}
	return out
}

// NotFound composes the fallback page. It has no data dependency beyond the
// message catalog.
func (c *Composer) NotFound(loc i18n.Locale) *Document {
	loc = c.resolver.Or(loc)
	doc := c.newDocument(loc, templateNotFound, routes.HomePath(loc), c.authorLinks())
	doc.Status = http.StatusNotFound
	doc.Meta.Title = doc.T("metadata.notFoundTitle")
	doc.Meta.Description = doc.T("notFound.description")
	doc.Meta.NoIndex = true
	doc.Body = NotFoundView{Localizer: doc.Localizer, BackURL: routes.HomePath(loc) + "#projects"}
	return doc
}

// Render writes doc. Fragments are written bare; pages go through the layout.
func (c *Composer) Render(w io.Writer, doc *Document) error {
	if doc.IsFragment() {
		_, err := io.WriteString(w, string(doc.Fragment))
		return err
	}
	return c.templates.page(w, doc)
}
