package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalkline/blog-api/internal/service"
	"github.com/chalkline/blog-api/internal/service/auth"
	"github.com/chalkline/blog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not post owner", service.ErrNotPostOwner, http.StatusForbidden},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", store.ErrPostNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	// Every authentication failure collapses into the same message.
	for _, err := range []error{
		auth.ErrInvalidToken,
		auth.ErrExpiredToken,
		auth.ErrTokenNotYetValid,
		auth.ErrMissingToken,
		service.ErrInvalidCredentials,
	} {
		assert.Equal(t, "Unauthorized", GetSafeErrorMessage(err))
	}

	assert.Equal(t, "You do not own this post", GetSafeErrorMessage(service.ErrNotPostOwner))
	assert.Equal(t, "Post not found", GetSafeErrorMessage(store.ErrPostNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))

	// Unknown errors must not leak their text.
	internal := errors.New("pq: connection reset by peer")
	msg := GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "pq:")
}
