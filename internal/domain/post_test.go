package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPost(t *testing.T) {
	authorID := uuid.New()

	post, err := NewPost("First Post", "Hello, world.", authorID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if post.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if post.Title != "First Post" {
		t.Errorf("Expected title %q, got %q", "First Post", post.Title)
	}

	if post.Content != "Hello, world." {
		t.Errorf("Expected content %q, got %q", "Hello, world.", post.Content)
	}

	if post.AuthorID != authorID {
		t.Errorf("Expected author ID %s, got %s", authorID, post.AuthorID)
	}

	if post.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if post.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test empty title
	_, err = NewPost("", "content", authorID)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}

	// Test overlong title
	_, err = NewPost(strings.Repeat("t", 201), "content", authorID)
	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}

	// Test empty content
	_, err = NewPost("title", "", authorID)
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected error %v, got %v", ErrEmptyContent, err)
	}

	// Test missing author
	_, err = NewPost("title", "content", uuid.Nil)
	if !errors.Is(err, ErrEmptyAuthorID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyAuthorID, err)
	}
}

func TestPostValidate(t *testing.T) {
	validPost := Post{
		ID:       uuid.New(),
		Title:    "A Title",
		Content:  "Some content",
		AuthorID: uuid.New(),
	}

	if err := validPost.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidPost := validPost
	invalidPost.ID = uuid.Nil
	if err := invalidPost.Validate(); !errors.Is(err, ErrEmptyPostID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPostID, err)
	}

	// Title at the boundary
	invalidPost = validPost
	invalidPost.Title = strings.Repeat("t", 200)
	if err := invalidPost.Validate(); err != nil {
		t.Errorf("Expected 200-char title to be valid, got %v", err)
	}
	invalidPost.Title = strings.Repeat("t", 201)
	if err := invalidPost.Validate(); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}
}

func TestPostIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	post, err := NewPost("title", "content", owner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !post.IsOwnedBy(owner) {
		t.Error("Expected post to be owned by its author")
	}

	if post.IsOwnedBy(other) {
		t.Error("Expected post not to be owned by a different user")
	}
}
