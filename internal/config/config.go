package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int

	// RandomSeed makes prediction runs reproducible when non-zero.
	RandomSeed int64
}

// Load loads configuration from environment variables. The service is fully
// self-contained, so everything has a default; the only way to fail is an
// unparsable value.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 100),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 200),
	}

	// CORS: the data and prediction endpoints are public, so the default is
	// allow-all.
	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if value := os.Getenv("RANDOM_SEED"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED %q: %w", value, err)
		}
		cfg.RandomSeed = seed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
