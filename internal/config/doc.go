// Package config defines the application configuration structures and
// loading logic. Configuration comes from environment variables, validated
// at startup so a misconfigured server fails fast instead of at first
// request.
package config
