package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chalkline/blog-api/internal/config"
	"github.com/chalkline/blog-api/internal/service/auth"
)

// DefaultAuthConfig returns a standard auth configuration suitable for
// testing. This is the single source of truth for JWT test config.
func DefaultAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	}
}

// RequireJWTService creates a JWT service with test settings, failing the
// test if construction fails.
func RequireJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	service, err := auth.NewJWTService(DefaultAuthConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// FastHasher returns a bcrypt hasher with minimum cost for fast tests.
func FastHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(4)
}
