package testutils

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
	"github.com/chalkline/blog-api/internal/store"
)

// MemoryPostStore is an in-memory implementation of store.PostStore.
// Safe for concurrent use.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]domain.Post
}

// NewMemoryPostStore creates an empty in-memory post store.
func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{
		posts: make(map[uuid.UUID]domain.Post),
	}
}

// Ensure MemoryPostStore implements store.PostStore interface
var _ store.PostStore = (*MemoryPostStore)(nil)

// Create implements store.PostStore.Create
func (s *MemoryPostStore) Create(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts[post.ID] = *post
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *MemoryPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &post, nil
}

// Update implements store.PostStore.Update
func (s *MemoryPostStore) Update(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return store.ErrPostNotFound
	}
	s.posts[post.ID] = *post
	return nil
}

// Delete implements store.PostStore.Delete
func (s *MemoryPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

// ListByAuthor implements store.PostStore.ListByAuthor
func (s *MemoryPostStore) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*domain.Post, 0)
	for _, post := range s.posts {
		if post.AuthorID == authorID {
			p := post
			posts = append(posts, &p)
		}
	}

	// Newest first, matching the SQL implementation's ordering.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}
