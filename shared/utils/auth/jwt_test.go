package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "user@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "abcd"
	_, err = ValidateJWT(tampered)
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "user@example.com")
	require.NoError(t, err)

	assert.False(t, IsTokenExpired(token))
	assert.True(t, IsTokenExpired("garbage"))
}

func TestGetJWTExpireDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, GetJWTExpireDuration())
}
