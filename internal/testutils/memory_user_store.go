package testutils

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/store"
)

// MemoryUserStore is an in-memory implementation of store.UserStore.
// Safe for concurrent use. It mirrors the Postgres implementation's
// semantics: folded usernames, uniqueness on the folded form, and the
// store package's sentinel errors.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Ensure MemoryUserStore implements store.UserStore interface
var _ store.UserStore = (*MemoryUserStore)(nil)

// Create implements store.UserStore.Create
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	s.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *MemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *MemoryUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	folded := domain.FoldUsername(username)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == folded {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Delete implements store.UserStore.Delete
func (s *MemoryUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}
