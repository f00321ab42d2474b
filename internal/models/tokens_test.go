package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenPair_AccessExpiresAt(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	tp := &TokenPair{Access: signedToken(t, jwt.MapClaims{"exp": exp.Unix()})}

	got, err := tp.AccessExpiresAt()
	require.NoError(t, err)
	require.WithinDuration(t, exp, got, time.Second)
}

func TestTokenPair_AccessExpiresAt_NoClaim(t *testing.T) {
	tp := &TokenPair{Access: signedToken(t, jwt.MapClaims{"sub": "1"})}

	_, err := tp.AccessExpiresAt()
	require.ErrorIs(t, err, ErrNoExpiryClaim)
}

func TestTokenPair_AccessExpiresAt_NotAJWT(t *testing.T) {
	tp := &TokenPair{Access: "opaque"}

	_, err := tp.AccessExpiresAt()
	require.Error(t, err)
}

func TestTokenPair_Empty(t *testing.T) {
	var nilPair *TokenPair
	require.True(t, nilPair.Empty())
	require.True(t, (&TokenPair{}).Empty())
	require.False(t, (&TokenPair{Access: "T1"}).Empty())
	require.False(t, (&TokenPair{Refresh: "R1"}).Empty())
}
