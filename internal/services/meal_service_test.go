package services_test

import (
	"fmt"
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMealService() services.MealService {
	return services.NewMealService(repositories.NewMealRepository())
}

func createMeal(t *testing.T, db *gorm.DB, ownerEmail, chefID, name string, price float64) *models.Meal {
	t.Helper()

	meal := &models.Meal{
		FoodName:              name,
		ChefName:              "Chef " + ownerEmail,
		ChefID:                chefID,
		FoodImage:             "https://img.example.com/meal.png",
		Price:                 price,
		Ingredients:           models.StringSlice{"salt", "water"},
		EstimatedDeliveryTime: "30 min",
		ChefExperience:        "5 years",
		UserEmail:             ownerEmail,
	}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create test meal: %v", err)
	}
	return meal
}

func TestMeal_CreateTakesOwnerFromClaims(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	chef := createUser(t, db, "owner@example.com", models.UserRoleChef, "chef-7777")

	meal, err := svc.Create(db, claimsFor(chef), &dto.CreateMealRequest{
		FoodName:              "Plov",
		ChefName:              "Chef Owner",
		FoodImage:             "https://img.example.com/plov.png",
		Price:                 12.5,
		Ingredients:           []string{"rice", "carrot", "lamb"},
		EstimatedDeliveryTime: "45 min",
		ChefExperience:        "10 years",
		DeliveryArea:          "Downtown",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", meal.UserEmail)
	assert.Equal(t, "chef-7777", meal.ChefID)
	assert.NotEmpty(t, meal.ID)
}

func TestMeal_PaginationAndPriceSort(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	for i := 0; i < 5; i++ {
		createMeal(t, db, "owner@example.com", "chef-1", fmt.Sprintf("Meal %d", i), float64(10+i))
	}

	asc, err := svc.List(db, 1, 2, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), asc.Total)
	assert.Equal(t, 3, asc.TotalPages)
	require.Len(t, asc.Items, 2)
	assert.Equal(t, 10.0, asc.Items[0].Price)
	assert.Equal(t, 11.0, asc.Items[1].Price)

	desc, err := svc.List(db, 1, 2, true)
	require.NoError(t, err)
	require.Len(t, desc.Items, 2)
	assert.Equal(t, 14.0, desc.Items[0].Price)

	lastPage, err := svc.List(db, 3, 2, false)
	require.NoError(t, err)
	require.Len(t, lastPage.Items, 1)
	assert.Equal(t, 14.0, lastPage.Items[0].Price)
}

func TestMeal_Mine(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	owner := createUser(t, db, "mine@example.com", models.UserRoleChef, "chef-1")
	createMeal(t, db, owner.Email, "chef-1", "Mine A", 10)
	createMeal(t, db, owner.Email, "chef-1", "Mine B", 11)
	createMeal(t, db, "other@example.com", "chef-2", "Not mine", 12)

	meals, err := svc.Mine(db, claimsFor(owner))
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestMeal_UpdateForeignMealForbidden(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	meal := createMeal(t, db, "owner@example.com", "chef-1", "Lagman", 9)
	intruder := createUser(t, db, "intruder@example.com", models.UserRoleChef, "chef-2")

	newName := "Hijacked"
	_, err := svc.Update(db, claimsFor(intruder), meal.ID, &dto.UpdateMealRequest{FoodName: &newName})
	assert.ErrorIs(t, err, appErrors.ErrNotMealOwner)

	// The stored record is unchanged.
	var stored models.Meal
	require.NoError(t, db.First(&stored, "id = ?", meal.ID).Error)
	assert.Equal(t, "Lagman", stored.FoodName)

	err = svc.Delete(db, claimsFor(intruder), meal.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotMealOwner)
}

func TestMeal_OwnerUpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	owner := createUser(t, db, "owner@example.com", models.UserRoleChef, "chef-1")
	meal := createMeal(t, db, owner.Email, "chef-1", "Manty", 8)

	newPrice := 9.5
	updated, err := svc.Update(db, claimsFor(owner), meal.ID, &dto.UpdateMealRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 9.5, updated.Price)
	assert.Equal(t, "Manty", updated.FoodName)

	require.NoError(t, svc.Delete(db, claimsFor(owner), meal.ID))

	_, err = svc.ByID(db, meal.ID)
	assert.ErrorIs(t, err, appErrors.ErrMealNotFound)
}

func TestMeal_ByIDUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newMealService()

	_, err := svc.ByID(db, "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrMealNotFound)
}
