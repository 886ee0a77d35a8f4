package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment variable names. These are flat (no prefix) to match the
// deployment convention: DATABASE_URL, HOST, PORT, JWT_SECRET, CORS_ORIGINS.
const (
	envDatabaseURL          = "DATABASE_URL"
	envHost                 = "HOST"
	envPort                 = "PORT"
	envLogLevel             = "LOG_LEVEL"
	envJWTSecret            = "JWT_SECRET"
	envCORSOrigins          = "CORS_ORIGINS"
	envTokenLifetimeMinutes = "TOKEN_LIFETIME_MINUTES"
)

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config struct or an error
// if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. DATABASE_URL and JWT_SECRET have no defaults on purpose:
	// validation fails loudly when they are absent.
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("auth.token_lifetime_minutes", 24*60)

	// Bind each config key to its environment variable.
	bindings := map[string]string{
		"server.host":                 envHost,
		"server.port":                 envPort,
		"server.log_level":            envLogLevel,
		"server.cors_origins":         envCORSOrigins,
		"database.url":                envDatabaseURL,
		"auth.jwt_secret":             envJWTSecret,
		"auth.token_lifetime_minutes": envTokenLifetimeMinutes,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// CORS_ORIGINS is a single comma-separated string in the environment;
	// viper unmarshals it into a one-element slice.
	cfg.Server.CORSOrigins = splitOrigins(cfg.Server.CORSOrigins)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// splitOrigins splits comma-separated origin entries and drops empty ones.
func splitOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, origin := range strings.Split(entry, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}
