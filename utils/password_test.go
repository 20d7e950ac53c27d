package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(6)
	b := GenerateRandomToken(6)
	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	// 62^6 values; a collision here means the generator is broken
	assert.NotEqual(t, a, b)
}
