package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Knowledge base
	IntentsFile string // Path to the intents source (.json, .yaml, .yml)

	// CORS
	CORSOrigins string // Comma-separated allowed origins; "*" allows all

	// Rate limiting
	RateLimitMax int    // Max requests per minute per IP
	RedisURL     string // Optional Redis URL for shared rate-limit storage
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":5000"),
		IntentsFile:  getEnv("INTENTS_FILE", "data/intents.json"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
