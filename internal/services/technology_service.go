package services

import "jeremiassnts.dev/internal/models"

// TechnologyGroup is one category of the technology list
type TechnologyGroup struct {
	Category     models.TechCategory
	Technologies []models.Technology
}

// TechnologyService groups technologies for display
type TechnologyService struct {
	content ContentSource
}

// NewTechnologyService creates a new TechnologyService
func NewTechnologyService(content ContentSource) *TechnologyService {
	return &TechnologyService{content: content}
}

// Grouped returns technologies grouped by category in the fixed category
// order. Categories with no entries are left out.
func (s *TechnologyService) Grouped() []TechnologyGroup {
	byCategory := make(map[models.TechCategory][]models.Technology)
	for _, t := range s.content.Technologies() {
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	groups := make([]TechnologyGroup, 0, len(models.TechCategories))
	for _, c := range models.TechCategories {
		if techs := byCategory[c]; len(techs) > 0 {
			groups = append(groups, TechnologyGroup{Category: c, Technologies: techs})
		}
	}
	return groups
}
