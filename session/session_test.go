package session_test

import (
	"testing"
	"time"

	"github.com/cleanduds/admin-dashboard/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_TokenLifecycle(t *testing.T) {
	s := session.New("")
	assert.False(t, s.Authenticated())

	s.SetToken("abc")
	assert.True(t, s.Authenticated())
	assert.Equal(t, "abc", s.Token())

	s.Clear()
	s.Clear() // clearing twice is harmless
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestSession_ClaimsFromToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})

	s := session.New(token)

	subject, ok := s.Subject()
	require.True(t, ok)
	assert.Equal(t, "42", subject)

	exp, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(expiry))
}

func TestSession_ClaimsUnavailable(t *testing.T) {
	_, ok := session.New("").Subject()
	assert.False(t, ok)

	_, ok = session.New("not-a-jwt").Subject()
	assert.False(t, ok)

	noExpiry := signedToken(t, jwt.RegisteredClaims{Subject: "7"})
	_, ok = session.New(noExpiry).ExpiresAt()
	assert.False(t, ok)
}
