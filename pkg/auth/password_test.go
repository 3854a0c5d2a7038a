package auth_test

import (
	"testing"

	"jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	digest, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", digest)

	t.Run("Correct password verifies", func(t *testing.T) {
		assert.True(t, hasher.Verify("s3cret-pass", digest))
	})

	t.Run("Wrong password fails", func(t *testing.T) {
		assert.False(t, hasher.Verify("wrong-pass", digest))
	})

	t.Run("Malformed digest fails safe", func(t *testing.T) {
		assert.False(t, hasher.Verify("s3cret-pass", "not-a-bcrypt-digest"))
	})
}

func TestPasswordHashIsSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}
