package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken("test-secret", userID, "owner", 24)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ParseToken("test-secret", token)

	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("test-secret", uuid.New(), "client", 24)
	assert.NoError(t, err)

	claims, err := ParseToken("other-secret", token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "client",
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	parsed, err := ParseToken("test-secret", token)

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseToken_Garbage(t *testing.T) {
	parsed, err := ParseToken("test-secret", "not.a.token")

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, VerifyPassword(hash, "secret123"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}
