package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token cannot be parsed or its signature
	// does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedHash indicates a stored password hash is not a valid bcrypt
	// hash. This points at corrupted storage, not a wrong password.
	ErrMalformedHash = errors.New("malformed password hash")
)
