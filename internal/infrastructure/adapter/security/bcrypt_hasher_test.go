package security

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("should verify the original password", func(t *testing.T) {
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.NotEqual(t, "secret1", hash)
		assert.NoError(t, hasher.Compare(hash, "secret1"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.ErrorIs(t, hasher.Compare(hash, "secret2"), errs.ErrInvalidCredentials)
	})

	t.Run("should reject passwords bcrypt cannot hold", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("x", 73))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should fall back to the default cost", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	})
}
