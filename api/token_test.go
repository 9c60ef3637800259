package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestTokenExpired(t *testing.T) {
	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.False(t, TokenExpired(future))

	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	assert.True(t, TokenExpired(past))

	// No exp claim: the server decides.
	noExp := signedToken(t, jwt.MapClaims{"sub": "ada"})
	assert.False(t, TokenExpired(noExp))

	assert.True(t, TokenExpired("not-a-jwt"))
	assert.True(t, TokenExpired(""))
}
