package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrInvalidEntity if the author does not exist (foreign key
	// violation), or validation errors from the domain Post.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// Update saves changes to an existing post's title and content.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByAuthor retrieves all posts owned by the given author, newest
	// first. Returns an empty slice if the author has no posts.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)
}
