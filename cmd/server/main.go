// Package main implements the entry point for the blog API server, which
// handles user registration and login and CRUD over blog posts with
// JWT-based authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/chalkline/blog-api/internal/config"
	"github.com/chalkline/blog-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
	os.Exit(0)
}

// run loads configuration, wires up the application, and serves until
// shutdown. Separated from main so the error path is a plain return.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cors_origins", cfg.Server.CORSOrigins,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
