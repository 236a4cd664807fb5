package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round-trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "secret1", hash)

		assert.NoError(t, hasher.Compare(hash, "secret1"))
	})

	t.Run("mismatched password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.ErrorIs(t, hasher.Compare(hash, "secret2"), ErrPasswordMismatch)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash("")
		assert.Error(t, err)
	})

	t.Run("invalid cost falls back to default", func(t *testing.T) {
		t.Parallel()
		h := NewBcryptHasher(99)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}
