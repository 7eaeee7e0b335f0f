package services_test

import (
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteService() services.FavoriteService {
	return services.NewFavoriteService(repositories.NewFavoriteRepository())
}

func addFavoriteRequest(mealID string) *dto.AddFavoriteRequest {
	return &dto.AddFavoriteRequest{
		MealID:   mealID,
		MealName: "Plov",
		ChefID:   "chef-1",
		ChefName: "Chef One",
		Price:    12,
	}
}

func TestFavorite_AddAndList(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService()

	user := createUser(t, db, "fan@example.com", models.UserRoleUser, "")

	fav, err := svc.Add(db, claimsFor(user), addFavoriteRequest("meal-1"))
	require.NoError(t, err)
	assert.Equal(t, user.Email, fav.UserEmail)
	assert.Equal(t, "meal-1", fav.MealID)

	listed, err := svc.List(db, claimsFor(user))
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestFavorite_DuplicateIsConflict(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService()

	user := createUser(t, db, "fan@example.com", models.UserRoleUser, "")

	_, err := svc.Add(db, claimsFor(user), addFavoriteRequest("meal-1"))
	require.NoError(t, err)

	_, err = svc.Add(db, claimsFor(user), addFavoriteRequest("meal-1"))
	assert.ErrorIs(t, err, appErrors.ErrFavoriteExists)

	// Exactly one row survives the conflict.
	var count int64
	db.Model(&models.Favorite{}).Where("user_email = ?", user.Email).Count(&count)
	assert.Equal(t, int64(1), count)

	// A different user can favorite the same meal.
	other := createUser(t, db, "other@example.com", models.UserRoleUser, "")
	_, err = svc.Add(db, claimsFor(other), addFavoriteRequest("meal-1"))
	require.NoError(t, err)
}

func TestFavorite_RemoveScopedToOwner(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService()

	owner := createUser(t, db, "owner@example.com", models.UserRoleUser, "")
	intruder := createUser(t, db, "intruder@example.com", models.UserRoleUser, "")

	fav, err := svc.Add(db, claimsFor(owner), addFavoriteRequest("meal-1"))
	require.NoError(t, err)

	// Someone else's delete is a silent no-op and leaves the row alone.
	require.NoError(t, svc.Remove(db, claimsFor(intruder), fav.ID))
	var count int64
	db.Model(&models.Favorite{}).Where("id = ?", fav.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Deleting an unknown id is also a silent no-op.
	require.NoError(t, svc.Remove(db, claimsFor(owner), "missing-id"))

	require.NoError(t, svc.Remove(db, claimsFor(owner), fav.ID))
	db.Model(&models.Favorite{}).Where("id = ?", fav.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
