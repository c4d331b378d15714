package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// DatabaseConfig holds database connection settings. URL is optional: without
// it the server keeps saved datasets in memory.
type DatabaseConfig struct {
	URL string
}

// AIConfig holds model service settings for prompt-driven generation.
// An empty key disables the adapter; the generator falls back to a default
// schema instead.
type AIConfig struct {
	GeminiKey   string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			AllowedOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		AI: AIConfig{
			GeminiKey:   os.Getenv("GEMINI_API_KEY"),
			Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature: getEnvFloatOrDefault("GEMINI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvIntOrDefault("GEMINI_MAX_TOKENS", 8192),
			Timeout:     getEnvDurationOrDefault("GEMINI_TIMEOUT", 60*time.Second),
		},
	}, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
