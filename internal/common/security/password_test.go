package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	match, err := CheckPasswordHash("secret1", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	match, err := CheckPasswordHash("secret2", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	t.Parallel()

	// A broken stored hash must surface as an error, not as "wrong password".
	match, err := CheckPasswordHash("secret1", "not-a-bcrypt-digest")
	require.Error(t, err)
	assert.False(t, match)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
