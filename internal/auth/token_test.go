package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	// negative ttl is replaced by the default, so build an already expired
	// issuer explicitly
	issuer.ttl = -time.Minute

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	other := NewTokenIssuer([]byte("another-secret"), time.Hour)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestNewTokenIssuerDefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 0)
	assert.Equal(t, DefaultTokenTTL, issuer.ttl)
}
