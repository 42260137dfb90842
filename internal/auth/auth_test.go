package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	v, err := NewJWTVerifier("", "")
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v, err := NewJWTVerifier("secret", "cvapi")
	require.NoError(t, err)

	token, err := v.Issue("user-1", time.Hour)
	require.NoError(t, err)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v, err := NewJWTVerifier("secret", "cvapi")
	require.NoError(t, err)

	other, err := NewJWTVerifier("other-secret", "cvapi")
	require.NoError(t, err)
	wrongSig, err := other.Issue("user-1", time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := NewJWTVerifier("secret", "someone-else")
	require.NoError(t, err)
	wrongIss, err := wrongIssuer.Issue("user-1", time.Hour)
	require.NoError(t, err)

	expired, err := v.Issue("user-1", -time.Minute)
	require.NoError(t, err)

	noSubject, err := v.Issue("", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":           "",
		"garbage":         "not-a-token",
		"wrong signature": wrongSig,
		"wrong issuer":    wrongIss,
		"expired":         expired,
		"missing subject": noSubject,
		"alg none":        none,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "u1"})
	id, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id.UserID)

	_, ok = FromContext(WithIdentity(context.Background(), Identity{}))
	assert.False(t, ok)
}
