package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/chalkline/blog-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse defines the user representation returned by the API.
// The password hash is never part of it.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// AccessToken is the JWT token used for API authorization.
	AccessToken string `json:"access_token"`

	// Username is the canonical (folded) name of the authenticated user.
	Username string `json:"username"`
}

// PostRequest defines the payload for post creation and update endpoints.
// The author is always taken from the authenticated identity, never from
// the payload.
type PostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// PostResponse defines the post representation returned by the API.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// postToResponse converts a domain.Post to a PostResponse.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
