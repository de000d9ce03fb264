package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSubjects seeds the subject list when SEED_SUBJECTS is unset.
const DefaultSubjects = "Intro to CS,Discrete Math"

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// SeedSubjects is the initial, append-only subject list offered to doctors.
	SeedSubjects []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		SeedSubjects: parseList(getEnv("SEED_SUBJECTS", DefaultSubjects)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseList splits a comma-separated string into a trimmed slice.
// Empty entries are dropped.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
