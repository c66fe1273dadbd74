package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"jeremiassnts.dev/internal/config"
	"jeremiassnts.dev/internal/content"
	"jeremiassnts.dev/internal/i18n"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Log.Level, cfg.Log.Format)

	store, err := content.Load(cfg.Site)
	if err != nil {
		log.WithError(err).Fatal("Failed to load content")
	}
	catalog, err := i18n.LoadCatalog(cfg.Site.Locales, cfg.Site.DefaultLocale)
	if err != nil {
		log.WithError(err).Fatal("Failed to load messages")
	}

	exp, err := newExporter(outputDir, cfg, store, catalog, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare export")
	}
	n, err := exp.Run(context.Background())
	if err != nil {
		log.WithError(err).Fatal("Export failed")
	}

	log.WithFields(map[string]interface{}{"dir": outputDir, "files": n}).Info("Done")
}

// nowFunc stamps sitemap entries
var nowFunc = time.Now
