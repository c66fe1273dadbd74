package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"jeremiassnts.dev/internal/config"
	"jeremiassnts.dev/internal/content"
	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
	"jeremiassnts.dev/internal/page"
	"jeremiassnts.dev/internal/routes"
	"jeremiassnts.dev/internal/services"
)

// renderConcurrency bounds how many pages render at once
const renderConcurrency = 4

// exporter writes the whole site as static files under dir
type exporter struct {
	dir       string
	site      models.SiteConfig
	resolver  *i18n.Resolver
	composer  *page.Composer
	generator *routes.Generator
	log       *logrus.Logger
	written   atomic.Int64
}

func newExporter(dir string, cfg *config.Config, store *content.Store, catalog *i18n.Catalog, log *logrus.Logger) (*exporter, error) {
	resolver := i18n.NewResolver(cfg.Site.Locales, cfg.Site.DefaultLocale)
	composer, err := page.NewComposer(cfg.Site, store, catalog, resolver, page.Options{
		DeferSections: cfg.App.DeferSections,
		Log:           log,
	})
	if err != nil {
		return nil, err
	}
	projects := services.NewProjectService(store)
	return &exporter{
		dir:       dir,
		site:      cfg.Site,
		resolver:  resolver,
		composer:  composer,
		generator: routes.NewGenerator(cfg.Site, projects, page.DeferredSections()),
		log:       log,
	}, nil
}

// Run renders every page and fragment, then the crawler files and static
// assets. It returns the number of files written.
func (e *exporter) Run(ctx context.Context) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(renderConcurrency)

	for _, p := range append(e.generator.Pages(), e.generator.Fragments()...) {
		g.Go(func() error {
			return e.page(ctx, p)
		})
	}
	g.Go(e.rootRedirect)
	g.Go(e.notFound)
	g.Go(e.crawlerFiles)
	g.Go(e.static)

	if err := g.Wait(); err != nil {
		return int(e.written.Load()), err
	}
	return int(e.written.Load()), nil
}

func (e *exporter) page(ctx context.Context, p routes.Page) error {
	var (
		doc *page.Document
		err error
	)
	switch p.Kind {
	case routes.KindHome:
		doc, err = e.composer.Home(ctx, p.Locale)
	case routes.KindProject:
		doc = e.composer.Project(p.Locale, p.Slug)
	case routes.KindSection:
		doc, err = e.composer.Section(ctx, p.Locale, p.Section)
	default:
		return fmt.Errorf("unknown page kind %d for %s", p.Kind, p.Path)
	}
	if err != nil {
		return fmt.Errorf("compose %s: %w", p.Path, err)
	}
	if doc.Status != http.StatusOK {
		// a slug missing from this locale still gets the fallback page
		e.log.WithFields(logrus.Fields{"path": p.Path, "status": doc.Status}).Warn("Page rendered as fallback")
	}

	var buf bytes.Buffer
	if err := e.composer.Render(&buf, doc); err != nil {
		return fmt.Errorf("render %s: %w", p.Path, err)
	}
	return e.write(filepath.Join(filepath.FromSlash(p.Path), "index.html"), buf.Bytes())
}

func (e *exporter) rootRedirect() error {
	target := routes.HomePath(e.resolver.Default())
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="0; url=%[1]s">
  <link rel="canonical" href="%[2]s">
</head>
<body><a href="%[1]s">%[1]s</a></body>
</html>
`, html.EscapeString(target), html.EscapeString(e.site.URL+target))
	return e.write("index.html", []byte(body))
}

func (e *exporter) notFound() error {
	var buf bytes.Buffer
	if err := e.composer.Render(&buf, e.composer.NotFound(e.resolver.Default())); err != nil {
		return fmt.Errorf("render 404: %w", err)
	}
	return e.write("404.html", buf.Bytes())
}

func (e *exporter) crawlerFiles() error {
	var buf bytes.Buffer
	if err := routes.WriteSitemapXML(&buf, e.generator.Sitemap(nowFunc())); err != nil {
		return err
	}
	if err := e.write("sitemap.xml", buf.Bytes()); err != nil {
		return err
	}
	return e.write("robots.txt", []byte(routes.RobotsTxt(e.site)))
}

func (e *exporter) static() error {
	assets := page.Static()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		return e.write(filepath.Join("static", filepath.FromSlash(path)), data)
	})
}

func (e *exporter) write(rel string, data []byte) error {
	path := filepath.Join(e.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	e.written.Add(1)
	e.log.WithField("file", rel).Debug("Wrote file")
	return nil
}
