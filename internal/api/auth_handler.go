package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/api/shared"
	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/service"
	"github.com/chalkline/blog-api/internal/store"
)

// AuthUseCase is the slice of the auth service the handler needs.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService AuthUseCase, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		if isDomainValidationError(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user data", err)
			return
		}
		log.Error("failed to register user", "error", err)
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /api/auth/login.
// Unknown username and wrong password both produce the identical 401
// response; only the logs can tell them apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Error("failed to authenticate user", "error", err)
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		AccessToken: token,
		Username:    domain.FoldUsername(req.Username),
	})
}

// isDomainValidationError reports whether the error is one of the domain
// user validation sentinels.
func isDomainValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrUsernameTooLong) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyHashedPassword)
}
