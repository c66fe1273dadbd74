// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"jeremiassnts.dev/internal/i18n"
	"jeremiassnts.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
	Site   models.SiteConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// LogConfig selects the logger level and output format
type LogConfig struct {
	Level  string
	Format string // json or text
}

// AppConfig holds application-level settings
type AppConfig struct {
	Dev            bool
	DeferSections  bool
	PageCacheTTL   time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables.
// It uses defaults suited to local development.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:         getEnv("SERVER_ADDR", ":8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		App: AppConfig{
			Dev:            getEnvBool("DEV", false),
			DeferSections:  getEnvBool("DEFER_SECTIONS", true),
			PageCacheTTL:   getEnvDuration("PAGE_CACHE_TTL", 10*time.Minute),
			RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		},
		Site: DefaultSite(getEnv("SITE_URL", "http://localhost:3001")),
	}
	if err := cfg.Site.Validate(); err != nil {
		return nil, fmt.Errorf("site config: %w", err)
	}
	return cfg, nil
}

// DefaultSite returns the site identity served from url
func DefaultSite(url string) models.SiteConfig {
	return models.SiteConfig{
		Name:        "Jeremias Santos",
		Description: "Fullstack Developer building scalable products for international markets",
		URL:         url,
		OGImage:     "/static/img/og-default.svg",
		Author: models.Author{
			Name:     "Jeremias Santos",
			Email:    "jeremiassnts3@gmail.com",
			GitHub:   "https://github.com/jeremiassnts",
			LinkedIn: "https://www.linkedin.com/in/jeremias-santos-b98674119",
		},
		Locales:       []i18n.Locale{"en", "pt"},
		DefaultLocale: "en",
	}
}

// Timeouts converts the configured seconds for http.Server
func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
