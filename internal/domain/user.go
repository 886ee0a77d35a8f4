package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 64 characters long")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered author of the blog service.
// The plaintext password never appears here; only its bcrypt hash is stored.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and password hash.
// The username is folded to lowercase here so every store sees the canonical
// form; lookups fold the same way. Returns an error if validation fails.
func NewUser(username, email, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Username:       FoldUsername(username),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// FoldUsername returns the canonical (lowercase, trimmed) form of a username.
// Both writes and lookups must use this form so uniqueness is case-insensitive.
func FoldUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 64 {
		return ErrUsernameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
