package services_test

import (
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() services.AuthService {
	return services.NewAuthService(repositories.NewUserRepository())
}

func TestLogin_CreatesNewUserWithDefaults(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService()

	resp, err := svc.Login(db, &dto.LoginRequest{
		Email:    "new@example.com",
		Name:     "Newcomer",
		PhotoURL: "https://img.example.com/p.png",
		Address:  "12 Main St",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, models.UserRoleUser, resp.User.Role)
	assert.Equal(t, models.UserStatusActive, resp.User.Status)
	assert.Empty(t, resp.User.ChefID)
	assert.NotEmpty(t, resp.User.ID)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID())
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestLogin_RefreshesProfileButNotPrivileges(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService()

	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1234")

	resp, err := svc.Login(db, &dto.LoginRequest{
		Email:    chef.Email,
		Name:     "Renamed Chef",
		PhotoURL: "https://img.example.com/new.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Chef", resp.User.Name)
	assert.Equal(t, models.UserRoleChef, resp.User.Role)
	assert.Equal(t, "chef-1234", resp.User.ChefID)

	// Empty address in the request leaves the stored one alone.
	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", chef.Email).Error)
	assert.Equal(t, chef.Address, stored.Address)
	assert.Equal(t, "Renamed Chef", stored.Name)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin_FraudUserStillGetsToken(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService()

	user := createUser(t, db, "shady@example.com", models.UserRoleUser, "")
	require.NoError(t, db.Model(user).Update("status", models.UserStatusFraud).Error)

	// Login itself is not blocked; the fraud flag rides along in the
	// claims and gates protected operations instead.
	resp, err := svc.Login(db, &dto.LoginRequest{Email: user.Email, Name: user.Name})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusFraud, claims.Status)
}

func TestMe_ReflectsCurrentDirectoryState(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService()

	user := createUser(t, db, "me@example.com", models.UserRoleUser, "")
	require.NoError(t, db.Model(user).Update("role", models.UserRoleChef).Error)

	got, err := svc.Me(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleChef, got.Role)
}

func TestMe_UnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService()

	_, err := svc.Me(db, "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
