package repositories

import (
	"errors"

	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")
)

type FavoriteRepository interface {
	Create(db *gorm.DB, favorite *models.Favorite) error
	FindByUser(db *gorm.DB, userEmail string) ([]models.Favorite, error)
	CountByUserAndMeal(db *gorm.DB, userEmail, mealID string) (int64, error)
	// DeleteOwned removes the favorite only when it belongs to userEmail.
	// Someone else's id deletes zero rows and reports it via the bool.
	DeleteOwned(db *gorm.DB, id, userEmail string) (bool, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) Create(db *gorm.DB, favorite *models.Favorite) error {
	// Uniqueness of (user_email, meal_id) is enforced by the index; the
	// pre-check gives a clean conflict error instead of a driver error.
	count, err := r.CountByUserAndMeal(db, favorite.UserEmail, favorite.MealID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrFavoriteAlreadyExists
	}

	if err := db.Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFavoriteAlreadyExists
		}
		return err
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindByUser(db *gorm.DB, userEmail string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := db.Where("user_email = ?", userEmail).Order("created_at desc").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteRepositoryImpl) CountByUserAndMeal(db *gorm.DB, userEmail, mealID string) (int64, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_email = ? AND meal_id = ?", userEmail, mealID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FavoriteRepositoryImpl) DeleteOwned(db *gorm.DB, id, userEmail string) (bool, error) {
	result := db.Delete(&models.Favorite{}, "id = ? AND user_email = ?", id, userEmail)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
