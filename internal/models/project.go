package models

import "slices"

// ProjectCategory classifies a project for the listing
type ProjectCategory string

const (
	CategoryWebApp     ProjectCategory = "web-app"
	CategoryMobileApp  ProjectCategory = "mobile-app"
	CategoryAPI        ProjectCategory = "api"
	CategoryTool       ProjectCategory = "tool"
	CategoryLibrary    ProjectCategory = "library"
	CategoryOpenSource ProjectCategory = "open-source"
)

// ProjectStatus is the lifecycle state shown next to a project
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusMaintained ProjectStatus = "maintained"
)

// ImageTypeHero tags the primary image in legacy image lists
const ImageTypeHero = "hero"

// Project represents a portfolio project
type Project struct {
	ID               string          `json:"id" validate:"required"`
	Slug             string          `json:"slug" validate:"required,lowercase"`
	Title            string          `json:"title" validate:"required"`
	ShortDescription string          `json:"short_description" validate:"required"`
	Description      string          `json:"description" validate:"required_without=Narrative"`
	Narrative        *Narrative      `json:"narrative,omitempty"`
	TechStack        []string        `json:"tech_stack" validate:"dive,required"`
	Category         ProjectCategory `json:"category" validate:"oneof=web-app mobile-app api tool library open-source"`
	Featured         bool            `json:"featured"`
	Year             int             `json:"year" validate:"gte=2000"`
	GitHubURL        string          `json:"github_url,omitempty" validate:"omitempty,url"`
	LiveURL          string          `json:"live_url,omitempty" validate:"omitempty,url"`
	Status           ProjectStatus   `json:"status" validate:"oneof=completed in-progress maintained"`
	Metrics          *ProjectMetrics `json:"metrics,omitempty"`
	HeroImage        *ProjectImage   `json:"hero_image,omitempty"`
	Gallery          []ProjectImage  `json:"gallery" validate:"dive"`
}

// Narrative is the problem/solution/outcome write-up some projects carry
// instead of a single description
type Narrative struct {
	Problem  string `json:"problem" validate:"required"`
	Solution string `json:"solution" validate:"required"`
	Outcome  string `json:"outcome,omitempty"`
}

// ProjectMetrics holds optional headline numbers
type ProjectMetrics struct {
	Users       string `json:"users,omitempty"`
	Performance string `json:"performance,omitempty"`
	Impact      string `json:"impact,omitempty"`
}

// Empty reports whether no metric is set
func (m *ProjectMetrics) Empty() bool {
	return m == nil || (m.Users == "" && m.Performance == "" && m.Impact == "")
}

// ProjectImage is an image with dimensions reserved for layout
type ProjectImage struct {
	Src    string `json:"src" validate:"required"`
	Alt    string `json:"alt" validate:"required"`
	Width  int    `json:"width" validate:"gt=0"`
	Height int    `json:"height" validate:"gt=0"`
	Type   string `json:"type,omitempty"`
}

// Clone returns a deep copy that shares no slices or pointees with p
func (p Project) Clone() Project {
	c := p
	c.TechStack = slices.Clone(p.TechStack)
	c.Gallery = slices.Clone(p.Gallery)
	if p.Narrative != nil {
		n := *p.Narrative
		c.Narrative = &n
	}
	if p.Metrics != nil {
		m := *p.Metrics
		c.Metrics = &m
	}
	if p.HeroImage != nil {
		h := *p.HeroImage
		c.HeroImage = &h
	}
	return c
}
