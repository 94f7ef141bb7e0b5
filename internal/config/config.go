// Package config centralises configuration parsing for the gamification
// service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the gamification service.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string
	PostgresURL     string
	KafkaBrokers    []string
	ConsumerTopics  []string
	ConsumerGroupID string
	JWTSecret       string
	JWTIssuer       string
	CatalogURL      string
	CatalogToken    string
	CatalogCacheTTL time.Duration
	SweepSchedule   string // cron spec for the nightly achievement sweep
	HTTPTimeout     time.Duration
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is merged in first.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9090"),
		PostgresURL:     getEnv("POSTGRES_URL", ""),
		ConsumerGroupID: getEnv("CONSUMER_GROUP_ID", "gamification-service"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:       getEnv("JWT_ISSUER", "fitcore.identity"),
		CatalogURL:      getEnv("CATALOG_URL", ""),
		CatalogToken:    getEnv("CATALOG_TOKEN", ""),
		CatalogCacheTTL: getDurationEnv("CATALOG_CACHE_TTL", 72*time.Hour),
		SweepSchedule:   getEnv("SWEEP_SCHEDULE", "0 30 3 * * *"),
		HTTPTimeout:     getDurationEnv("HTTP_TIMEOUT", 15*time.Second),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092"))
	cfg.ConsumerTopics = splitAndTrim(getEnv("CONSUMER_TOPICS", "activity_events"))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
