package models

// Availability tells visitors whether the author takes new work
type Availability string

const (
	Available    Availability = "available"
	NotAvailable Availability = "not-available"
	Limited      Availability = "limited"
)

// Profile is the author's localized profile
type Profile struct {
	Name         string       `json:"name" validate:"required"`
	Headline     string       `json:"headline" validate:"required"`
	Bio          string       `json:"bio" validate:"required"`
	Location     string       `json:"location" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Availability Availability `json:"availability" validate:"oneof=available not-available limited"`
	Social       SocialLinks  `json:"social"`
}

// SocialLinks are the author's external profiles
type SocialLinks struct {
	GitHub   string `json:"github" validate:"required,url"`
	LinkedIn string `json:"linkedin" validate:"required,url"`
	Twitter  string `json:"twitter,omitempty" validate:"omitempty,url"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}

// SocialLink is one named entry of SocialLinks
type SocialLink struct {
	Name string
	URL  string
}

// Links returns the configured social links in display order, skipping empty ones
func (s SocialLinks) Links() []SocialLink {
	all := []SocialLink{
		{Name: "GitHub", URL: s.GitHub},
		{Name: "LinkedIn", URL: s.LinkedIn},
		{Name: "Twitter", URL: s.Twitter},
		{Name: "Website", URL: s.Website},
	}
	links := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}
