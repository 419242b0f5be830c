package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/config"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer(config.AuthConfig{
		JWTSecret:          "test-secret-with-enough-entropy",
		AccessTokenExpire:  time.Minute,
		RefreshTokenExpire: time.Hour,
	})
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := testIssuer()

	pair, err := issuer.IssuePair("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)

	userID, err := issuer.Validate(pair.AccessToken, "access")
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	userID, err = issuer.Validate(pair.RefreshToken, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenKindMismatchRejected(t *testing.T) {
	issuer := testIssuer()
	pair, err := issuer.IssuePair("user-42")
	require.NoError(t, err)

	// A refresh token must not pass as an access token, and vice versa.
	_, err = issuer.Validate(pair.RefreshToken, "access")
	assert.Error(t, err)
	_, err = issuer.Validate(pair.AccessToken, "refresh")
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	pair, err := testIssuer().IssuePair("user-42")
	require.NoError(t, err)

	other := NewTokenIssuer(config.AuthConfig{
		JWTSecret:          "a-different-secret",
		AccessTokenExpire:  time.Minute,
		RefreshTokenExpire: time.Hour,
	})
	_, err = other.Validate(pair.AccessToken, "access")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{
		JWTSecret:          "test-secret-with-enough-entropy",
		AccessTokenExpire:  -time.Minute,
		RefreshTokenExpire: time.Hour,
	})
	pair, err := issuer.IssuePair("user-42")
	require.NoError(t, err)

	_, err = issuer.Validate(pair.AccessToken, "access")
	assert.Error(t, err)
}
