// Package repositories selects and prepares the configured storage backend.
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/SscSPs/budget_engine/internal/platform/config"
	"github.com/SscSPs/budget_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_engine/internal/repositories/database/sqlite"
	"github.com/SscSPs/budget_engine/internal/repositories/memory"
	"github.com/SscSPs/budget_engine/internal/repositories/seed"
	"github.com/SscSPs/budget_engine/pkg/database"
)

// NewRepositoryProvider opens the backend named by cfg.StorageBackend, migrates it and loads
// cfg.SeedFile when one is configured. The caller owns the returned provider's Close.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		return newPostgresProvider(ctx, cfg, logger)
	case config.StorageSQLite:
		return newSQLiteProvider(ctx, cfg, logger)
	case config.StorageMemory:
		store := memory.NewStore()
		if err := loadSeed(ctx, cfg.SeedFile, store, logger); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		return memory.NewRepositoryProvider(store), nil
	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func newPostgresProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	logger.Info("Running database migrations...")
	applied, err := pgsql.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to apply migrations: %w", err)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	fixtures := pgsql.NewFixtures(pool)
	if err := loadSeed(ctx, cfg.SeedFile, fixtures, logger); err != nil {
		pool.Close()
		return portsrepo.RepositoryProvider{}, err
	}
	return fixtures.Provider, nil
}

func newSQLiteProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	logger.Info("SQLite database ready", slog.String("path", cfg.SQLitePath))

	repos := sqlite.NewRepositories(db)
	provider := repos.Provider()
	if err := loadSeed(ctx, cfg.SeedFile, repos, logger); err != nil {
		provider.Close()
		return portsrepo.RepositoryProvider{}, err
	}
	return provider, nil
}

func loadSeed(ctx context.Context, path string, w seed.Writer, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	records, err := seed.LoadFile(path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	if err := records.Apply(ctx, w); err != nil {
		return fmt.Errorf("failed to apply seed file: %w", err)
	}
	logger.Info("Seed data loaded",
		slog.String("file", path),
		slog.Int("currencies", len(records.Currencies)),
		slog.Int("rates", len(records.Rates)),
		slog.Int("expenses", len(records.Expenses)),
		slog.Int("budgets", len(records.Budgets)))
	return nil
}
