package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkline/blog-api/internal/service"
	"github.com/chalkline/blog-api/internal/store"
	"github.com/chalkline/blog-api/internal/testutils"
)

func newTestAuthService(t *testing.T) (*service.AuthService, *testutils.MemoryUserStore) {
	t.Helper()
	userStore := testutils.NewMemoryUserStore()
	svc, err := service.NewAuthService(
		userStore,
		testutils.FastHasher(),
		testutils.RequireJWTService(t),
		nil,
	)
	require.NoError(t, err)
	return svc, userStore
}

func TestAuthServiceRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates user with folded username", func(t *testing.T) {
		t.Parallel()
		svc, userStore := newTestAuthService(t)

		user, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "password123", user.HashedPassword)

		stored, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, stored.Username)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "bob", "bob@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob", "other@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("rejects duplicate differing only in case", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "carol", "carol@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "CAROL", "carol2@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "dave", "not-an-email", "password123")
		require.Error(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("issues token for valid credentials", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		token, err := svc.Login(ctx, "alice", "password123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Token round-trips through the JWT service with the right subject.
		claims, err := testutils.RequireJWTService(t).ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("login is case-insensitive on username", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "Bob", "bob@example.com", "password123")
		require.NoError(t, err)

		token, err := svc.Login(ctx, "BOB", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown username and wrong password return the same error", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(ctx, "carol", "carol@example.com", "password123")
		require.NoError(t, err)

		_, unknownErr := svc.Login(ctx, "nosuchuser", "password123")
		_, wrongErr := svc.Login(ctx, "carol", "wrongpassword")

		assert.ErrorIs(t, unknownErr, service.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, service.ErrInvalidCredentials)
		// The two failure modes must be indistinguishable to the caller.
		assert.Equal(t, unknownErr, wrongErr)
	})
}

func TestAuthServiceGetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, userStore := newTestAuthService(t)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// A deleted account must no longer resolve.
	require.NoError(t, userStore.Delete(ctx, user.ID))
	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
