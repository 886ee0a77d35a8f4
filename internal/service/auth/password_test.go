package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	})

	t.Run("hash is salted", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		second, err := hasher.Hash("samepassword")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("wrong password mismatches", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("rightpassword")
		require.NoError(t, err)

		err = hasher.Compare(hash, "wrongpassword")
		assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
	})

	t.Run("corrupted hash reports malformed", func(t *testing.T) {
		t.Parallel()
		err := hasher.Compare("not-a-bcrypt-hash", "anything")
		assert.ErrorIs(t, err, ErrMalformedHash)
	})

	t.Run("zero cost selects default", func(t *testing.T) {
		t.Parallel()
		h := NewBcryptHasher(0)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})

	t.Run("password at bcrypt length limit", func(t *testing.T) {
		t.Parallel()
		// bcrypt truncates input beyond 72 bytes; the API layer caps
		// passwords at 72 so this is the longest accepted input.
		password := strings.Repeat("p", 72)
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NoError(t, hasher.Compare(hash, password))
	})
}
