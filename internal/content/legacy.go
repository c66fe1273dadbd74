package content

import "jeremiassnts.dev/internal/models"

// projectRecord is the on-disk shape of a project. Besides the canonical
// fields it accepts the older layout: a typed images list instead of
// hero_image/gallery, and problem/solution/outcome instead of description.
type projectRecord struct {
	models.Project
	Images   []models.ProjectImage `json:"images,omitempty"`
	Problem  string                `json:"problem,omitempty"`
	Solution string                `json:"solution,omitempty"`
	Outcome  string                `json:"outcome,omitempty"`
}

// upgrade converts a record to the canonical Project shape
func (r projectRecord) upgrade() models.Project {
	p := r.Project

	if len(r.Images) > 0 && p.HeroImage == nil && len(p.Gallery) == 0 {
		for i := range r.Images {
			img := r.Images[i]
			if img.Type == models.ImageTypeHero && p.HeroImage == nil {
				p.HeroImage = &img
				continue
			}
			p.Gallery = append(p.Gallery, img)
		}
	}

	if (r.Problem != "" || r.Solution != "") && p.Narrative == nil {
		p.Narrative = &models.Narrative{
			Problem:  r.Problem,
			Solution: r.Solution,
			Outcome:  r.Outcome,
		}
	}

	if p.Gallery == nil {
		p.Gallery = []models.ProjectImage{}
	}
	if p.Metrics.Empty() {
		p.Metrics = nil
	}
	return p
}
