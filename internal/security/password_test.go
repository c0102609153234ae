package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	ok, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	ok, err := VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("pw1", "not-a-bcrypt-hash")
	require.Error(t, err)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)

	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2a$10$"))
}
