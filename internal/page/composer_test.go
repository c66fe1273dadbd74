package page

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"html/template"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
)

// stubContent is an in-memory ContentSource
type stubContent struct {
	projects     []models.Project
	profileReads atomic.Int32
}

func (s *stubContent) ProfileFor(i18n.Locale) models.Profile {
	s.profileReads.Add(1)
	return models.Profile{
		Name:         "Jeremias",
		Headline:     "Fullstack Developer",
		Bio:          "Builds things.",
		Location:     "Brazil",
		Email:        "dev@example.com",
		Availability: models.Available,
		Social: models.SocialLinks{
			GitHub:   "https://github.com/example",
			LinkedIn: "https://linkedin.com/in/example",
		},
	}
}

func (s *stubContent) ProjectsFor(i18n.Locale) []models.Project { return s.projects }

func (s *stubContent) Technologies() []models.Technology {
	return []models.Technology{
		{Name: "Go", Category: models.TechBackend, Proficiency: models.Advanced},
		{Name: "React", Category: models.TechFrontend, Proficiency: models.Expert},
	}
}

func bareProject() models.Project {
	return models.Project{
		ID:               "1",
		Slug:             "tatame",
		Title:            "Tatame",
		ShortDescription: "Jiu-jitsu academy manager",
		Description:      "A management app for martial arts academies.",
		TechStack:        []string{"Go", "React", "PostgreSQL", "Docker", "AWS", "Redis"},
		Category:         models.CategoryWebApp,
		Year:             2024,
		Status:           models.StatusCompleted,
	}
}

func newTestComposer(t *testing.T, deferSections bool, projects ...models.Project) *Composer {
	t.Helper()
	return newComposerWith(t, deferSections, &stubContent{projects: projects}, nil)
}

func newComposerWith(t *testing.T, deferSections bool, content *stubContent, log *logrus.Logger) *Composer {
	t.Helper()
	locales := []i18n.Locale{"en", "pt"}
	catalog, err := i18n.LoadCatalog(locales, "en")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	site := models.SiteConfig{
		Name:          "Jeremias Santos",
		URL:           "https://example.dev",
		OGImage:       "/og.png",
		Author: models.Author{
			Name:     "Jeremias Santos",
			GitHub:   "https://github.com/site-author",
			LinkedIn: "https://linkedin.com/in/site-author",
		},
		Locales:       locales,
		DefaultLocale: "en",
	}
	c, err := NewComposer(site, content, catalog, i18n.NewResolver(locales, "en"), Options{
		DeferSections: deferSections,
		Now:           func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
		Log:           log,
	})
	if err != nil {
		t.Fatalf("new composer: %v", err)
	}
	return c
}

func render(t *testing.T, c *Composer, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(&buf, doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestProject_UnknownSlugIsNotFound(t *testing.T) {
	c := newTestComposer(t, false, bareProject())

	doc := c.Project("en", "does-not-exist")
	if doc.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", doc.Status)
	}
	if doc.Template != templateNotFound {
		t.Errorf("expected not-found template, got %s", doc.Template)
	}

	out := render(t, c, doc)
	if !strings.Contains(out, "Project not found") {
		t.Error("expected translated not-found title")
	}
	if !strings.Contains(out, `href="/en#projects"`) {
		t.Error("expected a link back to the projects listing")
	}
	if !strings.Contains(out, `content="noindex"`) {
		t.Error("expected not-found page to be noindex")
	}
}

func TestNotFound_Localized(t *testing.T) {
	c := newTestComposer(t, false)
	out := render(t, c, c.NotFound("pt"))
	if !strings.Contains(out, `lang="pt"`) {
		t.Error("expected pt document")
	}
	if !strings.Contains(out, `href="/pt#projects"`) {
		t.Error("expected back link into the pt homepage")
	}
}

func TestProject_NoActionsWhenURLsEmpty(t *testing.T) {
	c := newTestComposer(t, false, bareProject())

	doc := c.Project("en", "tatame")
	view := doc.Body.(ProjectView)
	if len(view.Actions) != 0 {
		t.Fatalf("expected no actions, got %d", len(view.Actions))
	}
	if strings.Contains(render(t, c, doc), "project-actions") {
		t.Error("expected action row to be omitted")
	}
}

func TestProject_ActionsOnlyForPresentURLs(t *testing.T) {
	p := bareProject()
	p.GitHubURL = "https://github.com/example/tatame"
	c := newTestComposer(t, false, p)

	view := c.Project("en", "tatame").Body.(ProjectView)
	if len(view.Actions) != 1 || view.Actions[0].Kind != "source" {
		t.Fatalf("expected a single source action, got %+v", view.Actions)
	}
}

func TestProject_Gallery(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	if strings.Contains(render(t, c, c.Project("en", "tatame")), `class="gallery"`) {
		t.Error("expected gallery to be omitted when empty")
	}

	p := bareProject()
	p.Gallery = []models.ProjectImage{{Src: "/img/1.png", Alt: "Dashboard", Width: 1280, Height: 720}}
	c = newTestComposer(t, false, p)
	out := render(t, c, c.Project("en", "tatame"))
	if !strings.Contains(out, `class="gallery"`) || !strings.Contains(out, `alt="Dashboard"`) {
		t.Error("expected gallery with its image")
	}
}

func TestProject_Narrative(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	view := c.Project("en", "tatame").Body.(ProjectView)
	if len(view.Narrative) != 1 || view.Narrative[0].Heading != "Overview" {
		t.Fatalf("expected description as a single overview block, got %+v", view.Narrative)
	}

	p := bareProject()
	p.Narrative = &models.Narrative{Problem: "p", Solution: "s"}
	c = newTestComposer(t, false, p)
	view = c.Project("pt", "tatame").Body.(ProjectView)
	if len(view.Narrative) != 2 {
		t.Fatalf("expected problem and solution blocks, got %d", len(view.Narrative))
	}
	if view.Narrative[0].Heading != "O Problema" {
		t.Errorf("expected pt heading, got %s", view.Narrative[0].Heading)
	}
}

func TestProject_Metrics(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	if strings.Contains(render(t, c, c.Project("en", "tatame")), `class="metrics"`) {
		t.Error("expected metrics grid to be omitted when absent")
	}

	p := bareProject()
	p.Metrics = &models.ProjectMetrics{Users: "500+"}
	c = newTestComposer(t, false, p)
	view := c.Project("en", "tatame").Body.(ProjectView)
	if len(view.Metrics) != 1 || view.Metrics[0].Value != "500+" {
		t.Errorf("expected only the users metric, got %+v", view.Metrics)
	}
}

func TestProject_Metadata(t *testing.T) {
	p := bareProject()
	p.HeroImage = &models.ProjectImage{Src: "/img/hero.png", Alt: "Hero", Width: 1600, Height: 900}
	c := newTestComposer(t, false, p)

	doc := c.Project("pt", "tatame")
	if doc.Meta.Canonical != "https://example.dev/pt/projects/tatame" {
		t.Errorf("unexpected canonical %s", doc.Meta.Canonical)
	}
	if doc.Meta.OGLocale != "pt_BR" {
		t.Errorf("expected pt_BR, got %s", doc.Meta.OGLocale)
	}
	if doc.Meta.OGImage != "https://example.dev/img/hero.png" {
		t.Errorf("expected hero image as og image, got %s", doc.Meta.OGImage)
	}
	if !strings.HasPrefix(doc.Meta.Title, "Tatame | ") {
		t.Errorf("unexpected title %s", doc.Meta.Title)
	}

	hrefs := map[string]string{}
	for _, a := range doc.Meta.Alternates {
		hrefs[a.Hreflang] = a.Href
	}
	if hrefs["en"] != "https://example.dev/en/projects/tatame" || hrefs["x-default"] != hrefs["en"] {
		t.Errorf("unexpected alternates %v", hrefs)
	}
}

func TestHome_SectionOrder(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	doc, err := c.Home(context.Background(), "en")
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	out := render(t, c, doc)

	last := -1
	for _, name := range Sections {
		i := strings.Index(out, `id="`+name+`"`)
		if i < 0 {
			t.Fatalf("section %s missing", name)
		}
		if i < last {
			t.Errorf("section %s out of order", name)
		}
		last = i
	}
	if strings.Contains(out, "data-section-src") {
		t.Error("expected no placeholders when deferral is off")
	}
}

func TestHome_DeferredSections(t *testing.T) {
	c := newTestComposer(t, true, bareProject())
	doc, err := c.Home(context.Background(), "en")
	if err != nil {
		t.Fatalf("home: %v", err)
	}

	slots := doc.Body.(HomeView).Sections
	if slots[0].Pending {
		t.Error("expected the first section inline")
	}
	for _, s := range slots[1:] {
		if !s.Pending {
			t.Errorf("expected %s to be deferred", s.Name)
		}
	}

	out := render(t, c, doc)
	if !strings.Contains(out, `data-section-src="/en/sections/projects"`) {
		t.Error("expected placeholder pointing at the projects fragment")
	}
	if !strings.Contains(out, "section-pending") {
		t.Error("expected placeholder shell")
	}
}

func TestHome_UnsupportedLocaleFallsBack(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	doc, err := c.Home(context.Background(), "fr")
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if doc.Locale != "en" {
		t.Errorf("expected en, got %s", doc.Locale)
	}
}

func TestSection(t *testing.T) {
	c := newTestComposer(t, true, bareProject())

	doc, err := c.Section(context.Background(), "en", "projects")
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	out := render(t, c, doc)
	if strings.Contains(out, "<html") {
		t.Error("expected a bare fragment")
	}
	if !strings.Contains(out, `href="/en/projects/tatame"`) {
		t.Error("expected project card link")
	}
	// html/template escapes "+" in text
	if !strings.Contains(out, "&#43;2 more") {
		t.Error("expected truncated tech list")
	}

	_, err = c.Section(context.Background(), "en", "blog")
	if !errors.Is(err, ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
}

func TestLanguageSwitcher(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	doc := c.Project("en", "tatame")
	for _, l := range doc.Languages {
		want := "/" + string(l.Locale) + "/projects/tatame"
		if l.Href != want {
			t.Errorf("expected %s, got %s", want, l.Href)
		}
		if l.Active != (l.Locale == "en") {
			t.Errorf("unexpected active flag for %s", l.Locale)
		}
	}
}

func TestDocumentNextTheme(t *testing.T) {
	d := &Document{}
	if d.NextTheme() != ThemeDark {
		t.Error("expected dark after system default")
	}
	d.Theme = ThemeDark
	if d.NextTheme() != ThemeLight {
		t.Error("expected light after dark")
	}
}

func TestNotFound_ReadsNoContent(t *testing.T) {
	content := &stubContent{projects: []models.Project{bareProject()}}
	c := newComposerWith(t, false, content, nil)

	out := render(t, c, c.NotFound("en"))
	if n := content.profileReads.Load(); n != 0 {
		t.Errorf("expected no profile reads, got %d", n)
	}
	if !strings.Contains(out, `href="https://github.com/site-author"`) {
		t.Error("expected footer links from the site author")
	}
}

func TestProjectsCards(t *testing.T) {
	c := newTestComposer(t, false, bareProject())
	cards := c.cards("en", []models.Project{bareProject()})
	if len(cards) != 1 || len(cards[0].Tech) != cardTechLimit || cards[0].More != 2 {
		t.Fatalf("expected four tech items and two more, got %+v", cards)
	}
}

func failingComposer(t *testing.T, failing string) (*Composer, *strings.Builder) {
	t.Helper()
	var logs strings.Builder
	log := logrus.New()
	log.SetOutput(&logs)
	log.SetFormatter(&logrus.JSONFormatter{})

	c := newComposerWith(t, false, &stubContent{projects: []models.Project{bareProject()}}, log)
	next := c.render
	c.render = func(name string, data any) (template.HTML, error) {
		if name == "section-"+failing {
			return "", errors.New("template exploded")
		}
		return next(name, data)
	}
	return c, &logs
}

func TestHome_FailedSectionShowsPlaceholder(t *testing.T) {
	c, logs := failingComposer(t, "about")

	doc, err := c.Home(context.Background(), "en")
	if err != nil {
		t.Fatalf("expected no error for a failed section, got %v", err)
	}
	if !doc.Partial {
		t.Error("expected partial document")
	}
	for _, s := range doc.Body.(HomeView).Sections {
		if s.Pending != (s.Name == "about") {
			t.Errorf("unexpected pending state for %s", s.Name)
		}
	}
	out := render(t, c, doc)
	if !strings.Contains(out, `data-section-src="/en/sections/about"`) {
		t.Error("expected about placeholder")
	}
	if !strings.Contains(logs.String(), "template exploded") {
		t.Error("expected the failure to be logged")
	}
}

func TestSection_FailedLoadShowsPlaceholder(t *testing.T) {
	c, _ := failingComposer(t, "contact")

	doc, err := c.Section(context.Background(), "pt", "contact")
	if err != nil {
		t.Fatalf("expected no error for a failed section, got %v", err)
	}
	if !doc.Partial || doc.Status != http.StatusOK {
		t.Errorf("expected partial 200 fragment, got partial=%v status=%d", doc.Partial, doc.Status)
	}
	if !strings.Contains(render(t, c, doc), `data-section-src="/pt/sections/contact"`) {
		t.Error("expected contact placeholder")
	}
}
