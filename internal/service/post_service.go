package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/store"
)

// PostService orchestrates CRUD over posts, enforcing ownership checks
// using the authenticated identity before any mutating operation.
type PostService struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostService creates a new PostService with the given dependencies.
// If logger is nil, the default logger is used.
func NewPostService(postStore store.PostStore, log *slog.Logger) *PostService {
	if log == nil {
		log = slog.Default()
	}
	return &PostService{
		postStore: postStore,
		logger:    log.With(slog.String("component", "post_service")),
	}
}

// CreatePost creates a post owned by authorID. The owner always comes from
// the authenticated identity, never from the request payload.
func (s *PostService) CreatePost(
	ctx context.Context,
	title, content string,
	authorID uuid.UUID,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := domain.NewPost(title, content, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Info("post created",
		"post_id", post.ID,
		"author_id", authorID)
	return post, nil
}

// GetPost retrieves a post by ID. Public; no ownership check.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.postStore.GetByID(ctx, id)
}

// UpdatePost replaces the title and content of the post. The ownership check
// happens before any field mutation. Returns store.ErrPostNotFound if the
// post does not exist, or ErrNotPostOwner if requesterID is not the author.
func (s *PostService) UpdatePost(
	ctx context.Context,
	id, requesterID uuid.UUID,
	title, content string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(requesterID) {
		log.Warn("update rejected: requester is not the author",
			"post_id", id,
			"author_id", post.AuthorID,
			"requester_id", requesterID)
		return nil, ErrNotPostOwner
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now().UTC()

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postStore.Update(ctx, post); err != nil {
		return nil, err
	}

	log.Info("post updated",
		"post_id", post.ID,
		"author_id", post.AuthorID)
	return post, nil
}

// DeletePost removes the post. Same ownership precondition as UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, id, requesterID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !post.IsOwnedBy(requesterID) {
		log.Warn("delete rejected: requester is not the author",
			"post_id", id,
			"author_id", post.AuthorID,
			"requester_id", requesterID)
		return ErrNotPostOwner
	}

	if err := s.postStore.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("post deleted",
		"post_id", id,
		"author_id", post.AuthorID)
	return nil
}

// ListPosts returns the posts owned by authorID, newest first.
func (s *PostService) ListPosts(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error) {
	return s.postStore.ListByAuthor(ctx, authorID)
}
