package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)

	token, err := tm.GenerateToken("a@x.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, claims.IssuedAt+int64(time.Hour.Seconds()), claims.ExpiresAt)
}

func TestTokenManagerRejects(t *testing.T) {
	tm, err := NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)

	other, err := NewTokenManager("different", time.Hour)
	require.NoError(t, err)
	foreign, err := other.GenerateToken("a@x.com")
	require.NoError(t, err)

	expired, err := NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.GenerateToken("a@x.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@x.com"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"none algorithm", unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}
