package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chalkline/blog-api/internal/api"
	apiMiddleware "github.com/chalkline/blog-api/internal/api/middleware"
	"github.com/chalkline/blog-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.authService, app.logger)
	postHandler := api.NewPostHandler(app.postService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.authService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Reading a single post is public
		r.Get("/post/{id}", postHandler.GetPost)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/post", postHandler.CreatePost)
			r.Put("/post/{id}", postHandler.UpdatePost)
			r.Delete("/post/{id}", postHandler.DeletePost)
			r.Get("/posts", postHandler.ListPosts)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
