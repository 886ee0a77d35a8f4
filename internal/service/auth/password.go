package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for hashing passwords and comparing
// them against stored hashes.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password, safe to persist.
	// The raw password is never logged or returned.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, bcrypt.ErrMismatchedHashAndPassword
	// on mismatch, or ErrMalformedHash if the stored hash is corrupted.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new BcryptHasher with the given cost.
// A cost of 0 selects bcrypt.DefaultCost; tests use a lower cost for speed.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return err
	}
	// Anything else means the stored hash itself is unusable.
	return fmt.Errorf("%w: %v", ErrMalformedHash, err)
}
