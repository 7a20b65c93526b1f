package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// DatabaseURL and DatabaseName locate the MongoDB deployment. Either one
	// being empty starts the storage layer in degraded mode.
	DatabaseURL         string
	DatabaseName        string
	MongoConnectTimeout time.Duration

	// RedisURL enables contact form rate limiting. Empty disables it.
	RedisURL          string
	ContactRateLimit  int
	ContactRateWindow time.Duration

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted.
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:          getEnv("PORT", "8000"),
		GinMode:             getEnv("GIN_MODE", "release"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DatabaseName:        os.Getenv("DATABASE_NAME"),
		MongoConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisURL:            os.Getenv("REDIS_URL"),
		ContactRateLimit:    getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow:   time.Duration(getEnvInt("CONTACT_RATE_WINDOW_SECONDS", 60)) * time.Second,
		AllowedOrigins:      parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// DatabaseURLSet reports whether a connection string was provided.
func (c *Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

// DatabaseNameSet reports whether a database name was provided.
func (c *Config) DatabaseNameSet() bool {
	return c.DatabaseName != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
