package auth

import (
	"testing"
	"time"

	"chefbazaar_backend/internal/config"
	"chefbazaar_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttlHours int) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlHours
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      models.UserRoleChef,
		Status:    models.UserStatusActive,
		ChefID:    "chef-4821",
	}
}

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	setTestConfig(t, "test-secret", 1)

	token, err := GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, models.UserRoleChef, claims.Role)
	assert.Equal(t, models.UserStatusActive, claims.Status)
	assert.Equal(t, "chef-4821", claims.ChefID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "secret-a", 1)
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	setTestConfig(t, "secret-b", 1)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, "test-secret", 1)

	claims := Claims{
		Email: "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsUnsignedAlgorithm(t *testing.T) {
	setTestConfig(t, "test-secret", 1)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-3"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "test-secret", 1)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGate(t *testing.T) {
	open := Gate{}
	assert.True(t, open.RoleAllowed(models.UserRoleUser))
	assert.True(t, open.StatusAllowed(models.UserStatusFraud))

	chefOnly := Gate{Roles: []models.UserRole{models.UserRoleChef}}
	assert.True(t, chefOnly.RoleAllowed(models.UserRoleChef))
	assert.False(t, chefOnly.RoleAllowed(models.UserRoleUser))
	assert.False(t, chefOnly.RoleAllowed(models.UserRoleAdmin))

	noFraud := Gate{ForbidFraud: true}
	assert.True(t, noFraud.StatusAllowed(models.UserStatusActive))
	assert.False(t, noFraud.StatusAllowed(models.UserStatusFraud))
}
