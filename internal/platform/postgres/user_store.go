package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// The advisory existence check and the insert run in one transaction; the
// unique constraint on username remains the authoritative guard, so a
// concurrent insert between the two statements still surfaces as
// store.ErrUsernameExists.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var existing uuid.UUID
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE username = $1`,
			user.Username,
		).Scan(&existing)
		if err == nil {
			log.Debug("username already taken",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to check username availability",
				slog.String("error", err.Error()))
			return err
		}

		query := `
			INSERT INTO users (id, username, email, hashed_password, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err = tx.ExecContext(
			ctx,
			query,
			user.ID,
			user.Username,
			user.Email,
			user.HashedPassword,
			user.CreatedAt,
			user.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				// Lost the race to a concurrent insert.
				log.Debug("unique violation during user creation",
					slog.String("username", user.Username))
				return store.ErrUsernameExists
			}
			log.Error("failed to create user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return err
		}

		log.Info("user created successfully",
			slog.String("user_id", user.ID.String()),
			slog.String("username", user.Username))
		return nil
	})
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
// The name is folded before querying; usernames are stored pre-folded, so
// the lookup is effectively case-insensitive.
func (s *PostgresUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, hashed_password, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, domain.FoldUsername(username)).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &user, nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}
