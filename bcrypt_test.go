package accounts_test

import (
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := accounts.HashPassword("securePassword123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "securePassword123!", hash)

	assert.NoError(t, accounts.ComparePasswordAndHash("securePassword123!", hash))
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := accounts.HashPassword("right-password")
	require.NoError(t, err)

	err = accounts.ComparePasswordAndHash("wrong-password", hash)
	assert.ErrorIs(t, err, accounts.ErrMismatchedHashAndPassword)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := accounts.HashPassword("")
	assert.ErrorIs(t, err, accounts.ErrNoEmptyString)
}

func TestHashIsSalted(t *testing.T) {
	h1, err := accounts.HashPassword("same-password")
	require.NoError(t, err)
	h2, err := accounts.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
