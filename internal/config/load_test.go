package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment, so no t.Parallel.

const testSecret = "test-jwt-secret-that-is-32-chars-long"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/blog_test")
	t.Setenv("JWT_SECRET", testSecret)

	// Clear optional variables the ambient environment might define.
	// Viper treats set-but-empty as unset, so defaults still apply.
	for _, env := range []string{"HOST", "PORT", "LOG_LEVEL", "CORS_ORIGINS", "TOKEN_LIFETIME_MINUTES"} {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "postgres://localhost:5432/blog_test", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadCORSOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "https://example.com, https://blog.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"https://example.com", "https://blog.example.com"},
		cfg.Server.CORSOrigins)
}

func TestLoadMissingRequired(t *testing.T) {
	// Viper treats a set-but-empty variable as unset, so clearing with an
	// empty value works even when the ambient environment defines it.
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", testSecret)

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("missing JWT secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/blog_test")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("short JWT secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/blog_test")
		t.Setenv("JWT_SECRET", "too-short")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("out of range port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "70000")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestServerConfigAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}
