package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestGenerateRandomTokenUnique(t *testing.T) {
	a, err := GenerateRandomToken(16)
	require.NoError(t, err)
	b, err := GenerateRandomToken(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashTokenDeterministic(t *testing.T) {
	token := "550e8400-e29b-41d4-a716-446655440000"

	first := HashToken(token)
	second := HashToken(token)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, token, first)
}

func TestHashTokenDiffersPerInput(t *testing.T) {
	assert.NotEqual(t, HashToken("token-a"), HashToken("token-b"))
}
