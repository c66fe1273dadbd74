package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/middleware"
	"jeremiassnts.dev/internal/page"
)

const htmlContentType = "text/html; charset=utf-8"

// renderedPage is a cached response body
type renderedPage struct {
	status int
	body   []byte
}

// PageHandler serves the composed HTML pages
type PageHandler struct {
	composer *page.Composer
	log      *logrus.Logger
	cache    *cache.Cache
}

// NewPageHandler creates a PageHandler. Rendered pages are kept for ttl;
// a zero ttl disables the cache.
func NewPageHandler(composer *page.Composer, log *logrus.Logger, ttl time.Duration) *PageHandler {
	h := &PageHandler{composer: composer, log: log}
	if ttl > 0 {
		h.cache = cache.New(ttl, 2*ttl)
	}
	return h
}

// Home handles GET /{locale}
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() (*page.Document, error) {
		return h.composer.Home(r.Context(), localeParam(r))
	})
}

// Project handles GET /{locale}/projects/{slug}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() (*page.Document, error) {
		return h.composer.Project(localeParam(r), chi.URLParam(r, "slug")), nil
	})
}

// Section handles GET /{locale}/sections/{section}
func (h *PageHandler) Section(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() (*page.Document, error) {
		doc, err := h.composer.Section(r.Context(), localeParam(r), chi.URLParam(r, "section"))
		if errors.Is(err, page.ErrUnknownSection) {
			return h.composer.NotFound(localeParam(r)), nil
		}
		return doc, err
	})
}

// NotFound renders the fallback page in the negotiated locale
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.FromContext(r.Context())
	doc := h.composer.NotFound(loc)
	doc.Theme = middleware.ThemeFrom(r)

	var buf bytes.Buffer
	if err := h.composer.Render(&buf, doc); err != nil {
		h.fail(w, r, err)
		return
	}
	write(w, renderedPage{status: doc.Status, body: buf.Bytes()}, "")
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, build func() (*page.Document, error)) {
	theme := middleware.ThemeFrom(r)
	key := theme + "|" + r.URL.Path
	if h.cache != nil {
		if v, ok := h.cache.Get(key); ok {
			write(w, v.(renderedPage), "HIT")
			return
		}
	}

	doc, err := build()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	doc.Theme = theme

	var buf bytes.Buffer
	if err := h.composer.Render(&buf, doc); err != nil {
		h.fail(w, r, err)
		return
	}

	p := renderedPage{status: doc.Status, body: buf.Bytes()}
	// only complete 200 pages are cached
	if h.cache != nil && doc.Status == http.StatusOK && !doc.Partial {
		h.cache.SetDefault(key, p)
	}
	write(w, p, "MISS")
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFrom(r.Context()),
		"uri":        r.URL.RequestURI(),
	}).WithError(err).Error("Failed to render page")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func write(w http.ResponseWriter, p renderedPage, cacheStatus string) {
	w.Header().Set("Content-Type", htmlContentType)
	if cacheStatus != "" {
		w.Header().Set("X-Cache", cacheStatus)
	}
	w.WriteHeader(p.status)
	_, _ = w.Write(p.body)
}
