package models

// TechCategory groups technologies on the homepage
type TechCategory string

const (
	TechFrontend TechCategory = "frontend"
	TechBackend  TechCategory = "backend"
	TechDatabase TechCategory = "database"
	TechDevOps   TechCategory = "devops"
	TechTools    TechCategory = "tools"
)

// TechCategories is the fixed display order of categories
var TechCategories = []TechCategory{TechFrontend, TechBackend, TechDatabase, TechDevOps, TechTools}

// Proficiency is the optional self-assessed skill level
type Proficiency string

const (
	Expert       Proficiency = "expert"
	Advanced     Proficiency = "advanced"
	Intermediate Proficiency = "intermediate"
)

// Technology is one entry of the technology list
type Technology struct {
	Name        string       `json:"name" validate:"required"`
	Category    TechCategory `json:"category" validate:"oneof=frontend backend database devops tools"`
	Proficiency Proficiency  `json:"proficiency,omitempty" validate:"omitempty,oneof=expert advanced intermediate"`
}
