package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("unit-test-secret")

	token, err := GenerateToken(TokenClaims{ID: 42, Email: "a@b.c", Role: "USER"}, secret, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}

func TestValidateTokenRejections(t *testing.T) {
	secret := []byte("unit-test-secret")

	_, err := ValidateToken("garbage", secret)
	assert.Error(t, err)

	expired, err := GenerateToken(TokenClaims{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(expired, secret)
	assert.Error(t, err)

	otherKey, err := GenerateToken(TokenClaims{ID: 1}, []byte("different"), time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(otherKey, secret)
	assert.Error(t, err)
}
