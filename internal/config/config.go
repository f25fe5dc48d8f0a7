// Package config centralizes environment-based application settings.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the application configuration.
type Settings struct {
	Addr           string
	DatabaseURL    string
	SecretKey      string
	AllowedOrigins []string
	Environment    string
	Debug          bool
}

// Load reads settings from the environment, loading a .env file first if
// one is present.
func Load() *Settings {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return &Settings{
		Addr:           getenv("ADDR", "127.0.0.1:8080"),
		DatabaseURL:    getenv("DATABASE_URL", "postgres://localhost:5432/moodboard"),
		SecretKey:      getenv("SECRET_KEY", "fallback-secret-key"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		Environment:    getenv("ENVIRONMENT", "development"),
		Debug:          strings.EqualFold(getenv("DEBUG", "true"), "true"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
