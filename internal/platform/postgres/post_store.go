package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity if the author ID doesn't exist (foreign key
// violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("author_id", post.AuthorID.String()))
			return fmt.Errorf("%w: author with ID %s not found",
				store.ErrInvalidEntity, post.AuthorID)
		}
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	return &post, nil
}

// Update implements store.PostStore.Update
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		post.Title,
		post.Content,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("post not found for update",
			slog.String("post_id", post.ID.String()))
		return store.ErrPostNotFound
	}

	log.Info("post updated successfully",
		slog.String("post_id", post.ID.String()))
	return nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("post not found for delete",
			slog.String("post_id", id.String()))
		return store.ErrPostNotFound
	}

	log.Info("post deleted successfully",
		slog.String("post_id", id.String()))
	return nil
}

// ListByAuthor implements store.PostStore.ListByAuthor
// Returns an empty slice if the author has no posts.
func (s *PostgresPostStore) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, authorID)
	if err != nil {
		log.Error("failed to query posts by author",
			slog.String("error", err.Error()),
			slog.String("author_id", authorID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan post row",
				slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	return posts, nil
}
