package auth_test

import (
	"testing"
	"time"

	"go-blog-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func newManager() *auth.TokenManager {
	return auth.NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newManager()

	token, err := m.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	userID, err := m.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newManager()

	token, err := m.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	userID, err := m.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	m := newManager()

	refresh, err := m.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	// A refresh token must never pass access-token verification
	_, err = m.VerifyAccessToken(refresh)
	assert.Error(t, err)

	access, err := m.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := auth.NewTokenManager("access-secret", "refresh-secret", -1*time.Minute, -1*time.Minute)

	token, err := m.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = m.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := newManager()

	_, err := m.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
}
