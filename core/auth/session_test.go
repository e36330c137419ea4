package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionFromToken(t *testing.T) {
	exp := time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC)
	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "nurse1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: RoleNurse,
	})

	sess, err := SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, RoleNurse, sess.Role)
	assert.Equal(t, "nurse1", sess.Subject)
	assert.True(t, sess.ExpiresAt.Equal(exp))
}

func TestSessionFromTokenMinimalClaims(t *testing.T) {
	sess, err := SessionFromToken(signToken(t, Claims{}))
	require.NoError(t, err)
	assert.Empty(t, sess.Role)
	assert.True(t, sess.ExpiresAt.IsZero())
}

func TestSessionFromTokenGarbage(t *testing.T) {
	_, err := SessionFromToken("not.a.jwt")
	assert.Error(t, err)
}

func TestSessionState(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Token: "tok"}.Authenticated())

	// no expiry claim means the session never expires client-side
	assert.False(t, Session{Token: "tok"}.Expired(now))
	assert.False(t, Session{Token: "tok", ExpiresAt: now.Add(time.Hour)}.Expired(now))
	assert.True(t, Session{Token: "tok", ExpiresAt: now.Add(-time.Hour)}.Expired(now))
}
