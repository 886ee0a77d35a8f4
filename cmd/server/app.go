package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/chalkline/blog-api/internal/config"
	"github.com/chalkline/blog-api/internal/platform/postgres"
	"github.com/chalkline/blog-api/internal/service"
	"github.com/chalkline/blog-api/internal/service/auth"
	"github.com/chalkline/blog-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	postStore store.PostStore

	// Service layer
	jwtService  auth.JWTService
	hasher      auth.PasswordHasher
	authService *service.AuthService
	postService *service.PostService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password hasher with the default bcrypt cost
	app.hasher = auth.NewBcryptHasher(0)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)

	// Initialize services
	app.authService, err = service.NewAuthService(
		app.userStore,
		app.hasher,
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.postService = service.NewPostService(app.postStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
