package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("secret1", hash))
	assert.False(t, VerifyPassword("secret2", hash))
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// different salts produce different encodings, both still verify
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret1", first))
	assert.True(t, VerifyPassword("secret1", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret1", ""))
	assert.False(t, VerifyPassword("secret1", "not-a-bcrypt-hash"))
}

func TestVerifyPassword_HashIsNotPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
}
