package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the user's
	// ID and display name. Returns the token string or an error if token
	// generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded payload of a verified token.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Username is the display name of the user at issue time.
	Username string `json:"name,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
