package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, VerifyPassword("secret1", hash))
	assert.False(t, VerifyPassword("secret2", hash))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("s3cr3t", time.Hour, "vidshare-go")

	token, err := m.GenerateToken(42)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "vidshare-go", claims.Issuer)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenManager_NoExpiry(t *testing.T) {
	m := NewTokenManager("s3cr3t", 0, "vidshare-go")

	token, err := m.GenerateToken(7)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("s3cr3t", time.Hour, "vidshare-go")

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ParseToken("garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour, "vidshare-go")
		token, err := other.GenerateToken(1)
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager("s3cr3t", time.Minute, "vidshare-go")
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateToken(1)
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.ParseToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
