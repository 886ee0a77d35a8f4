package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/api/shared"
	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/service/auth"
	"github.com/chalkline/blog-api/internal/store"
)

// unauthorizedMessage is the single body sent for every authentication
// failure. The specific failure kind (missing header, bad signature, expired
// token, deleted account) is logged internally but never leaked to the client.
const unauthorizedMessage = "Unauthorized"

// IdentityResolver resolves a token subject into a live user record.
// *service.AuthService satisfies this.
type IdentityResolver interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AuthMiddleware provides JWT bearer authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	resolver   IdentityResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
	}
}

// Authenticate validates bearer tokens from the Authorization header,
// resolves the token subject to a live user, and attaches the identity to
// the request context. Requests that fail any step are rejected with 401
// before reaching the handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, err := extractBearerToken(r)
		if err != nil {
			log.Debug("authentication failed: no usable bearer token", "error", err)
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Debug("authentication failed: token rejected", "error", err)
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		// Resolve the subject against the user store so a still-valid token
		// of a deleted account is rejected.
		user, err := m.resolver.GetUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("authentication failed: token subject no longer exists",
					"user_id", claims.UserID)
				shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
				return
			}
			log.Error("authentication failed: identity lookup error", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of the Authorization header.
// Returns auth.ErrMissingToken if the header is absent or not a Bearer
// credential.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrMissingToken
	}

	return parts[1], nil
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (shared.Identity, bool) {
	return shared.IdentityFromContext(r.Context())
}
