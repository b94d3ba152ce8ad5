package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret)

	token, err := manager.GenerateToken(99, "admin@kampus.ac.id", []string{"org_admin"}, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(99), claims.UserID)
	assert.Equal(t, "admin@kampus.ac.id", claims.Email)
	assert.True(t, claims.HasRole("org_admin"))
	assert.False(t, claims.HasRole("superadmin"))
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager(testSecret)

	token, err := manager.GenerateToken(99, "admin@kampus.ac.id", nil, -time.Minute)
	assert.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret).GenerateToken(99, "", nil, time.Hour)
	assert.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-00").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
