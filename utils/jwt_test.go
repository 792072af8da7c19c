package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-123", "amina@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, email, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
	assert.Equal(t, "amina@example.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "amina@example.com", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not-a-jwt")
	assert.Error(t, err)

	_, _, err = ExtractClaimsFromToken("")
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "amina@example.com", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, _, err = ExtractClaimsFromToken(tampered)
	assert.Error(t, err)
}
