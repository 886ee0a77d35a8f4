package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Register the pgx stdlib driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/chalkline/blog-api/internal/config"
	"github.com/chalkline/blog-api/internal/platform/postgres"
)

// setupDatabase establishes a connection to the database, configures the
// connection pool, and runs pending schema migrations.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")

	if err := postgres.RunMigrations(db, logger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
