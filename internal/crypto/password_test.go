package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	// Два хеша одного пароля различаются (случайная соль)
	hash2, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("secret-password", hash))
	assert.Error(t, VerifyPassword("wrong-password", hash))
	assert.Error(t, VerifyPassword("Secret-Password", hash)) // регистр значим
	assert.Error(t, VerifyPassword(" secret-password", hash))
}

func TestVerifyPassword_EmptyArgs(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.Error(t, VerifyPassword("", hash))
	assert.Error(t, VerifyPassword("secret-password", ""))
}
