package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword("admin123", hash))
	assert.False(t, CheckPassword("admin124", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret", first))
	assert.True(t, CheckPassword("secret", second))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret", ""))
}
