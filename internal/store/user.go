package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's username must already
	// be in canonical folded form (domain.NewUser guarantees this).
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by username. The lookup is
	// case-insensitive: the name is folded before querying.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
