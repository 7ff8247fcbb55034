package config_test

import (
	"testing"

	"todoweb/pkg/config"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	RegisterTestingT(t)

	cfg := config.Load()

	Expect(cfg.Port).To(Equal("8080"))
	Expect(cfg.Environment).To(Equal("development"))
	Expect(cfg.DatabasePath).To(Equal("todoweb.db"))
	Expect(cfg.MigrationsPath).To(Equal("db/migrations"))
	Expect(cfg.TemplatesGlob).To(Equal("web/templates/*.html"))
	Expect(cfg.LogLevel).To(Equal("info"))
	Expect(cfg.RateLimitEnabled).To(BeTrue())
}

func TestLoadFromEnvironment(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todoweb")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := config.Load()

	Expect(cfg.Port).To(Equal("9090"))
	Expect(cfg.Environment).To(Equal("production"))
	Expect(cfg.DatabaseURL).To(Equal("postgres://localhost:5432/todoweb"))
	Expect(cfg.RateLimitEnabled).To(BeFalse())
}

func TestNewLoggerLevels(t *testing.T) {
	RegisterTestingT(t)

	cfg := &config.Config{LogLevel: "warn"}
	Expect(cfg.NewLogger().GetLevel()).To(Equal(zerolog.WarnLevel))

	cfg = &config.Config{LogLevel: "nonsense"}
	Expect(cfg.NewLogger().GetLevel()).To(Equal(zerolog.InfoLevel))
}
