package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct-pass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "correct-pass", hash)

	assert.NoError(t, ComparePassword(hash, "correct-pass"))
	assert.Error(t, ComparePassword(hash, "wrong-pass"))
}

func TestComparePasswordDifferentPlaintexts(t *testing.T) {
	hash, err := HashPassword("alpha", bcrypt.MinCost)
	require.NoError(t, err)

	otherHash, err := HashPassword("beta", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Error(t, ComparePassword(hash, "beta"))
	assert.Error(t, ComparePassword(otherHash, "alpha"))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	assert.Error(t, ComparePassword("not-a-bcrypt-hash", "anything"))
	assert.Error(t, ComparePassword("", "anything"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	// Each hash embeds a fresh salt.
	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "same-input"))
	assert.NoError(t, ComparePassword(second, "same-input"))
}
