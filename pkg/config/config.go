package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Port             string
	Environment      string
	DatabaseURL      string
	DatabasePath     string
	MigrationsPath   string
	TemplatesGlob    string
	LogLevel         string
	RateLimitEnabled bool
}

// Load reads configuration from the environment, with .env support for
// local development. Missing keys fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("APP_ENV", "development"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabasePath:     getEnv("DATABASE_PATH", "todoweb.db"),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "db/migrations"),
		TemplatesGlob:    getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
	}
}

// NewLogger builds the service logger at the configured level.
func (c *Config) NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)

	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "todoweb").
		Logger()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)

	if err != nil {
		return fallback
	}

	return parsed
}
