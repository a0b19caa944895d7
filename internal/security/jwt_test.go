package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newManager() *JWTManager {
	return NewJWTManager("test-secret-key-32-characters!!!", 15*time.Minute, 7*24*time.Hour, 7*24*time.Hour)
}

func TestJWTManager_AccessToken(t *testing.T) {
	m := newManager()

	token, err := m.GenerateAccessToken("665f1c0a9b1e8a3d2c4b5a69", "ada@example.com")
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "665f1c0a9b1e8a3d2c4b5a69", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Empty(t, claims.Role)
	assert.Equal(t, "swiftsites", claims.Issuer)
}

func TestJWTManager_AdminToken(t *testing.T) {
	m := newManager()

	token, err := m.GenerateAdminToken("665f1c0a9b1e8a3d2c4b5a69", "admin@swiftsites.dev")
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTManager_TokenPair(t *testing.T) {
	m := newManager()

	access, refresh, expiresIn, err := m.GenerateTokenPair("665f1c0a9b1e8a3d2c4b5a69", "ada@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), expiresIn)

	_, err = m.ValidateToken(access)
	assert.NoError(t, err)

	subject, err := m.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, "665f1c0a9b1e8a3d2c4b5a69", subject)
}

func TestJWTManager_RejectsTamperedToken(t *testing.T) {
	m := newManager()
	other := NewJWTManager("a-completely-different-secret!!!", 15*time.Minute, time.Hour, time.Hour)

	token, err := other.GenerateAccessToken("665f1c0a9b1e8a3d2c4b5a69", "ada@example.com")
	assert.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret-key-32-characters!!!", -time.Minute, time.Hour, time.Hour)

	token, err := m.GenerateAccessToken("665f1c0a9b1e8a3d2c4b5a69", "ada@example.com")
	assert.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	_, err := newManager().ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
