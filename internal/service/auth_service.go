package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/platform/logger"
	"github.com/chalkline/blog-api/internal/service/auth"
	"github.com/chalkline/blog-api/internal/store"
)

// AuthService orchestrates user registration, login and identity lookup
// using the password hasher, token service and user store.
type AuthService struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger

	// dummyHash is compared against on the unknown-user login path so that
	// path costs the same as a real password check. Without it, response
	// timing would reveal whether a username exists.
	dummyHash string
}

// NewAuthService creates a new AuthService with the given dependencies.
// If logger is nil, the default logger is used.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	log *slog.Logger,
) (*AuthService, error) {
	if log == nil {
		log = slog.Default()
	}

	dummyHash, err := hasher.Hash("credential-padding-placeholder")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare auth service: %w", err)
	}

	return &AuthService{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     log.With(slog.String("component", "auth_service")),
		dummyHash:  dummyHash,
	}, nil
}

// Register creates a new user account. The username is folded to lowercase,
// the password is hashed, and the record is persisted. Returns
// store.ErrUsernameExists if the name is taken. The pre-check below is only
// a fast path for a friendly error; the database unique constraint is the
// authoritative guard against the check-then-insert race.
func (s *AuthService) Register(
	ctx context.Context,
	username, email, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	folded := domain.FoldUsername(username)
	if _, err := s.userStore.GetByUsername(ctx, folded); err == nil {
		log.Debug("registration rejected: username taken", "username", folded)
		return nil, store.ErrUsernameExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password during registration", "error", err)
		return nil, err
	}

	user, err := domain.NewUser(username, email, hashed)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues a signed token on success.
// Unknown username and wrong password both return ErrInvalidCredentials:
// the outward result is identical in shape, and the dummy hash comparison
// keeps the two branches comparable in cost.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, domain.FoldUsername(username))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a comparison so this branch costs what a mismatch costs.
			_ = s.hasher.Compare(s.dummyHash, password)
			log.Debug("login failed: unknown username")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrMalformedHash) {
			log.Error("login failed: stored hash is corrupted", "user_id", user.ID)
			return "", err
		}
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", err
	}

	log.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// GetUser resolves a token subject back into a live user record. The request
// authenticator calls this so that a still-valid token of a deleted account
// is rejected. Returns store.ErrUserNotFound if no such user exists.
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, userID)
}
