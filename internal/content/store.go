// Package content holds the code-embedded, locale-keyed site content.
// A Store is built once at startup and never mutated afterwards.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrInvalidContent wraps every problem found while loading content
var ErrInvalidContent = errors.New("invalid content")

// Bundle is the content of a single locale
type Bundle struct {
	Profile  models.Profile
	Projects []models.Project
}

// Store serves locale bundles with a default-locale fallback
type Store struct {
	site         models.SiteConfig
	bundles      map[i18n.Locale]*Bundle
	technologies []models.Technology
}

// Load builds a Store from the embedded data files
func Load(site models.SiteConfig) (*Store, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return New(site, sub)
}

// New builds a Store from profile.json, projects.json and technologies.json in fsys
func New(site models.SiteConfig, fsys fs.FS) (*Store, error) {
	var profiles map[i18n.Locale]models.Profile
	if err := readJSON(fsys, "profile.json", &profiles); err != nil {
		return nil, err
	}
	var records map[i18n.Locale][]projectRecord
	if err := readJSON(fsys, "projects.json", &records); err != nil {
		return nil, err
	}
	var technologies []models.Technology
	if err := readJSON(fsys, "technologies.json", &technologies); err != nil {
		return nil, err
	}

	s := &Store{
		site:         site,
		bundles:      make(map[i18n.Locale]*Bundle, len(site.Locales)),
		technologies: technologies,
	}
	for _, loc := range site.Locales {
		profile, ok := profiles[loc]
		if !ok {
			return nil, fmt.Errorf("%w: no profile for locale %s", ErrInvalidContent, loc)
		}
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, loc, err)
		}
		projects, err := upgradeAll(records[loc])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, loc, err)
		}
		s.bundles[loc] = &Bundle{Profile: profile, Projects: projects}
	}
	for _, t := range technologies {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
	}
	return s, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidContent, name, err)
	}
	return nil
}

// upgradeAll adapts and validates a locale's project list, keeping source order
func upgradeAll(records []projectRecord) ([]models.Project, error) {
	if len(records) == 0 {
		return nil, errors.New("no projects")
	}
	projects := make([]models.Project, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		p := r.upgrade()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		projects = append(projects, p)
	}
	return projects, nil
}

// bundle applies the single fallback rule: unknown locales get the default bundle
func (s *Store) bundle(loc i18n.Locale) *Bundle {
	if b, ok := s.bundles[loc]; ok {
		return b
	}
	return s.bundles[s.site.DefaultLocale]
}

// Site returns the configuration the store was built for
func (s *Store) Site() models.SiteConfig {
	return s.site
}

// ProfileFor returns the profile of loc, or of the default locale
func (s *Store) ProfileFor(loc i18n.Locale) models.Profile {
	return s.bundle(loc).Profile
}

// ProjectsFor returns the projects of loc in source order, or those of the default locale
func (s *Store) ProjectsFor(loc i18n.Locale) []models.Project {
	src := s.bundle(loc).Projects
	projects := make([]models.Project, len(src))
	for i, p := range src {
		projects[i] = p.Clone()
	}
	return projects
}

// Technologies returns the technology list in source order
func (s *Store) Technologies() []models.Technology {
	return slices.Clone(s.technologies)
}
