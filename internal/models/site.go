package models

import (
	"fmt"
	"slices"

	"jeremiassnts.dev/internal/i18n"
)

// SiteConfig is the process-wide, read-only site configuration
type SiteConfig struct {
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description" validate:"required"`
	URL           string        `json:"url" validate:"required,url"`
	OGImage       string        `json:"og_image" validate:"required"`
	Author        Author        `json:"author"`
	Locales       []i18n.Locale `json:"locales" validate:"required,min=1,dive,required"`
	DefaultLocale i18n.Locale   `json:"default_locale" validate:"required"`
}

// Author is the contact block shown in the footer
type Author struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GitHub   string `json:"github" validate:"required,url"`
	LinkedIn string `json:"linkedin" validate:"required,url"`
}

// Validate checks field rules and that the default locale is supported
func (s SiteConfig) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("site config: %w", err)
	}
	if !slices.Contains(s.Locales, s.DefaultLocale) {
		return fmt.Errorf("site config: default locale %q not in %v", s.DefaultLocale, s.Locales)
	}
	return nil
}
