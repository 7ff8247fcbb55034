package http

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"todoweb/internal/adapter/database/postgres"
	pgrepo "todoweb/internal/adapter/database/postgres/repository"
	"todoweb/internal/adapter/database/sqlite"
	sqliterepo "todoweb/internal/adapter/database/sqlite/repository"
	"todoweb/internal/adapter/http/routes"
	"todoweb/internal/adapter/telemetry"
	"todoweb/internal/core/port"
	"todoweb/pkg/config"
)

// StartServer wires storage, service, and router, then serves until ctx
// is cancelled. Postgres is used when DATABASE_URL is set, sqlite
// otherwise.
func StartServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	metrics := telemetry.NewAppMetrics()

	repo, closeDB, err := openRepository(ctx, cfg, logger)

	if err != nil {
		return err
	}

	defer closeDB()

	container := NewContainer(repo, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		TodoHandler: container.TodoHandler,
	}, metrics, logger, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Bool("rate_limit_enabled", cfg.RateLimitEnabled).
		Msg("server starting")

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func openRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (port.TodoRepository, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, filepath.Join(cfg.MigrationsPath, "postgres"))

		if err != nil {
			return nil, nil, err
		}

		return pgrepo.NewTodoRepository(db), db.Close, nil
	}

	db, err := sqlite.NewDB(cfg.DatabasePath, filepath.Join(cfg.MigrationsPath, "sqlite"), logger)

	if err != nil {
		return nil, nil, err
	}

	return sqliterepo.NewTodoRepository(db), func() { db.Close() }, nil
}
