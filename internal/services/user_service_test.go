package services_test

import (
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() services.UserService {
	return services.NewUserService(repositories.NewUserRepository())
}

func TestUser_ListUsers(t *testing.T) {
	db := setupDB(t)
	svc := newUserService()

	createUser(t, db, "a@example.com", models.UserRoleUser, "")
	createUser(t, db, "b@example.com", models.UserRoleChef, "chef-1")

	users, err := svc.ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUser_FlagFraud(t *testing.T) {
	db := setupDB(t)
	svc := newUserService()

	user := createUser(t, db, "shady@example.com", models.UserRoleUser, "")

	require.NoError(t, svc.FlagFraud(db, user.ID))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserStatusFraud, stored.Status)

	// Flagging twice is harmless.
	require.NoError(t, svc.FlagFraud(db, user.ID))
}

func TestUser_FlagFraudAdminRejected(t *testing.T) {
	db := setupDB(t)
	svc := newUserService()

	admin := createUser(t, db, "admin@example.com", models.UserRoleAdmin, "")

	err := svc.FlagFraud(db, admin.ID)
	assert.ErrorIs(t, err, appErrors.ErrCannotFlagAdmin)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	assert.Equal(t, models.UserStatusActive, stored.Status)
}

func TestUser_FlagFraudUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newUserService()

	err := svc.FlagFraud(db, "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
