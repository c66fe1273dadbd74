package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/services"
)

// ProjectHandler serves the JSON view of the content store
type ProjectHandler struct {
	projectService *services.ProjectService
	content        services.ContentSource
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, content services.ContentSource) *ProjectHandler {
	return &ProjectHandler{projectService: ps, content: content}
}

func localeParam(r *http.Request) i18n.Locale {
	return i18n.Locale(chi.URLParam(r, "locale"))
}

// ListProjects handles GET /api/{locale}/projects[?featured=true]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	loc := localeParam(r)
	projects := h.projectService.All(loc)
	if r.URL.Query().Get("featured") == "true" {
		projects = h.projectService.Featured(loc)
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/{locale}/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.BySlug(localeParam(r), slug)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetProfile handles GET /api/{locale}/profile
func (h *ProjectHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.content.ProfileFor(localeParam(r)))
}
