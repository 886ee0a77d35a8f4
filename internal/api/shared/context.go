package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is the key type for context values set by this package.
type ContextKey string

// Context keys for various values
const (
	// IdentityContextKey is the context key for the authenticated identity.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// Identity is the resolved identity of an authenticated requester, attached
// to the request context by the auth middleware. It is a snapshot of the
// live user record, not of the token claims: the middleware re-resolves the
// subject so tokens of deleted accounts are rejected.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// IdentityFromContext retrieves the authenticated identity from the context.
// The boolean reports whether an identity was present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(Identity)
	return identity, ok
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string. If crypto/rand fails, falls back to a
// UUID so the ID is never static.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength)
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
