package services

import (
	"errors"
	"fmt"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested slug
var ErrProjectNotFound = errors.New("project not found")

// ContentSource is the read side of the content store
type ContentSource interface {
	ProfileFor(loc i18n.Locale) models.Profile
	ProjectsFor(loc i18n.Locale) []models.Project
	Technologies() []models.Technology
}

// ProjectService handles project-related lookups
type ProjectService struct {
	content ContentSource
}

// NewProjectService creates a new ProjectService
func NewProjectService(content ContentSource) *ProjectService {
	return &ProjectService{content: content}
}

// All returns every project of a locale in source order
func (s *ProjectService) All(loc i18n.Locale) []models.Project {
	return s.content.ProjectsFor(loc)
}

// BySlug returns a specific project by slug
func (s *ProjectService) BySlug(loc i18n.Locale, slug string) (*models.Project, error) {
	projects := s.content.ProjectsFor(loc)
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// Featured returns the projects flagged for the highlight listing
func (s *ProjectService) Featured(loc i18n.Locale) []models.Project {
	var featured []models.Project
	for _, p := range s.content.ProjectsFor(loc) {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Slugs returns the slugs of a locale's projects in source order
func (s *ProjectService) Slugs(loc i18n.Locale) []string {
	projects := s.content.ProjectsFor(loc)
	slugs := make([]string, len(projects))
	for i, p := range projects {
		slugs[i] = p.Slug
	}
	return slugs
}
