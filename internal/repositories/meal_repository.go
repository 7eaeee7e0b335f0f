package repositories

import (
	"errors"

	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

type MealRepository interface {
	Create(db *gorm.DB, meal *models.Meal) error
	FindByID(db *gorm.DB, id string) (*models.Meal, error)
	FindPage(db *gorm.DB, page, limit int, sortDesc bool) ([]models.Meal, int64, error)
	FindByOwner(db *gorm.DB, userEmail string) ([]models.Meal, error)
	Update(db *gorm.DB, meal *models.Meal) error
	Delete(db *gorm.DB, id string) error
}

type MealRepositoryImpl struct{}

func NewMealRepository() MealRepository {
	return &MealRepositoryImpl{}
}

func (r *MealRepositoryImpl) Create(db *gorm.DB, meal *models.Meal) error {
	return db.Create(meal).Error
}

func (r *MealRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Meal, error) {
	var meal models.Meal
	if err := db.First(&meal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// FindPage returns one page of meals sorted by price.
func (r *MealRepositoryImpl) FindPage(db *gorm.DB, page, limit int, sortDesc bool) ([]models.Meal, int64, error) {
	var total int64
	if err := db.Model(&models.Meal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "price asc"
	if sortDesc {
		order = "price desc"
	}

	var meals []models.Meal
	offset := (page - 1) * limit
	if err := db.Order(order).Offset(offset).Limit(limit).Find(&meals).Error; err != nil {
		return nil, 0, err
	}
	return meals, total, nil
}

func (r *MealRepositoryImpl) FindByOwner(db *gorm.DB, userEmail string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := db.Where("user_email = ?", userEmail).Order("created_at desc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MealRepositoryImpl) Update(db *gorm.DB, meal *models.Meal) error {
	return db.Save(meal).Error
}

func (r *MealRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Meal{}, "id = ?", id).Error
}
