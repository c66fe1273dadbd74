package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a project record against its field rules
func (p Project) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("project %q: %w", p.Slug, err)
	}
	return nil
}

// Validate checks a profile record against its field rules
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}

// Validate checks a technology entry against its field rules
func (t Technology) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("technology %q: %w", t.Name, err)
	}
	return nil
}
