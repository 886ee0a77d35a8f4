package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Post validation errors
var (
	ErrEmptyPostID   = errors.New("post ID cannot be empty")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title must be at most 200 characters long")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrEmptyAuthorID = errors.New("author ID cannot be empty")
)

// Post represents a blog post. Every post has exactly one author; mutation
// and deletion are gated on the requester being that author.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new Post owned by the given author.
// Returns an error if validation fails.
func NewPost(title, content string, authorID uuid.UUID) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.Title == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > 200 {
		return ErrTitleTooLong
	}

	if p.Content == "" {
		return ErrEmptyContent
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyAuthorID
	}

	return nil
}

// IsOwnedBy reports whether the post belongs to the given user.
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}
