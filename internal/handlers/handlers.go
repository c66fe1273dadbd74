package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/config"
	"jeremiassnts.dev/internal/content"
	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/middleware"
	"jeremiassnts.dev/internal/page"
	"jeremiassnts.dev/internal/routes"
	"jeremiassnts.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store *content.Store, catalog *i18n.Catalog, log *logrus.Logger) (http.Handler, error) {
	resolver := i18n.NewResolver(cfg.Site.Locales, cfg.Site.DefaultLocale)

	composer, err := page.NewComposer(cfg.Site, store, catalog, resolver, page.Options{
		DeferSections: cfg.App.DeferSections,
		Log:           log,
	})
	if err != nil {
		return nil, err
	}

	// Initialize services
	projectService := services.NewProjectService(store)
	generator := routes.NewGenerator(cfg.Site, projectService, page.DeferredSections())

	// Initialize handlers
	cacheTTL := cfg.App.PageCacheTTL
	if cfg.App.Dev {
		cacheTTL = 0
	}
	pageHandler := NewPageHandler(composer, log, cacheTTL)
	projectHandler := NewProjectHandler(projectService, store)
	sitemapHandler := NewSitemapHandler(generator, cfg.Site, log)
	limiter := middleware.NewRateLimiter(cfg.App.RateLimitRPS, cfg.App.RateLimitBurst, 10*time.Minute)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(limiter.Handler)
	r.Use(middleware.Prefs)
	r.Use(middleware.Locale(resolver))

	locale := localePattern(resolver.Locales())

	r.NotFound(pageHandler.NotFound)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routes.HomePath(resolver.Default()), http.StatusTemporaryRedirect)
	})
	r.Get("/sitemap.xml", sitemapHandler.Sitemap)
	r.Get("/robots.txt", sitemapHandler.Robots)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/"+locale, func(r chi.Router) {
			r.Get("/projects", projectHandler.ListProjects)
			r.Get("/projects/{slug}", projectHandler.GetProject)
			r.Get("/profile", projectHandler.GetProfile)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(page.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Localized pages
	r.Route("/"+locale, func(r chi.Router) {
		r.Get("/", pageHandler.Home)
		r.Get("/projects/{slug}", pageHandler.Project)
		r.Get("/sections/{section}", pageHandler.Section)
	})

	return r, nil
}

// localePattern builds a chi route param matching only supported locales
func localePattern(locales []i18n.Locale) string {
	quoted := make([]string, len(locales))
	for i, l := range locales {
		quoted[i] = regexp.QuoteMeta(string(l))
	}
	return "{locale:(?:" + strings.Join(quoted, "|") + ")}"
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("Error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
