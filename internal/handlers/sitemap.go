package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/models"
	"jeremiassnts.dev/internal/routes"
)

// SitemapHandler serves the crawler-facing route listings
type SitemapHandler struct {
	generator *routes.Generator
	site      models.SiteConfig
	log       *logrus.Logger
	now       func() time.Time
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(generator *routes.Generator, site models.SiteConfig, log *logrus.Logger) *SitemapHandler {
	return &SitemapHandler{generator: generator, site: site, log: log, now: time.Now}
}

// Sitemap handles GET /sitemap.xml
func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := routes.WriteSitemapXML(w, h.generator.Sitemap(h.now())); err != nil {
		h.log.WithError(err).Error("Failed to write sitemap")
	}
}

// Robots handles GET /robots.txt
func (h *SitemapHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, routes.RobotsTxt(h.site))
}
