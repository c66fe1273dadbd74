package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"jeremiassnts.dev/internal/config"
	"jeremiassnts.dev/internal/content"
	"jeremiassnts.dev/internal/handlers"
	"jeremiassnts.dev/internal/i18n"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger not configured yet
		config.NewLogger("info", "json").WithError(err).Fatal("Invalid configuration")
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

	handler, err := handlers.SetupRoutes(cfg, store, catalog, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to set up routes")
	}

	read, write, idle := cfg.Server.Timeouts()
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  idle,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":     cfg.Server.Addr,
			"site_url": cfg.Site.URL,
			"dev":      cfg.App.Dev,
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Error during shutdown")
	}
	log.Info("Server stopped gracefully")
}
