package services

import (
	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"gorm.io/gorm"
)

type MealService interface {
	List(db *gorm.DB, page, limit int, sortDesc bool) (*dto.MealListResponse, error)
	ByID(db *gorm.DB, mealID string) (*models.Meal, error)
	Mine(db *gorm.DB, claims *auth.Claims) ([]models.Meal, error)
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateMealRequest) (*models.Meal, error)
	Update(db *gorm.DB, claims *auth.Claims, mealID string, req *dto.UpdateMealRequest) (*models.Meal, error)
	Delete(db *gorm.DB, claims *auth.Claims, mealID string) error
}

type MealServiceImpl struct {
	mealRepo repositories.MealRepository
}

func NewMealService(mealRepo repositories.MealRepository) MealService {
	return &MealServiceImpl{
		mealRepo: mealRepo,
	}
}

func (s *MealServiceImpl) List(db *gorm.DB, page, limit int, sortDesc bool) (*dto.MealListResponse, error) {
	meals, total, err := s.mealRepo.FindPage(db, page, limit, sortDesc)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dto.MealListResponse{
		Items:      meals,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *MealServiceImpl) ByID(db *gorm.DB, mealID string) (*models.Meal, error) {
	meal, err := s.mealRepo.FindByID(db, mealID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrMealNotFound) {
			return nil, appErrors.ErrMealNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return meal, nil
}

func (s *MealServiceImpl) Mine(db *gorm.DB, claims *auth.Claims) ([]models.Meal, error) {
	meals, err := s.mealRepo.FindByOwner(db, claims.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return meals, nil
}

func (s *MealServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateMealRequest) (*models.Meal, error) {
	meal := &models.Meal{
		FoodName:              req.FoodName,
		ChefName:              req.ChefName,
		ChefID:                claims.ChefID,
		FoodImage:             req.FoodImage,
		Price:                 req.Price,
		Ingredients:           req.Ingredients,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		ChefExperience:        req.ChefExperience,
		DeliveryArea:          req.DeliveryArea,
		UserEmail:             claims.Email,
	}

	if err := s.mealRepo.Create(db, meal); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return meal, nil
}

func (s *MealServiceImpl) Update(db *gorm.DB, claims *auth.Claims, mealID string, req *dto.UpdateMealRequest) (*models.Meal, error) {
	meal, err := s.findOwned(db, claims, mealID)
	if err != nil {
		return nil, err
	}

	if req.FoodName != nil {
		meal.FoodName = *req.FoodName
	}
	if req.FoodImage != nil {
		meal.FoodImage = *req.FoodImage
	}
	if req.Price != nil {
		meal.Price = *req.Price
	}
	if req.Ingredients != nil {
		meal.Ingredients = req.Ingredients
	}
	if req.EstimatedDeliveryTime != nil {
		meal.EstimatedDeliveryTime = *req.EstimatedDeliveryTime
	}
	if req.ChefExperience != nil {
		meal.ChefExperience = *req.ChefExperience
	}
	if req.DeliveryArea != nil {
		meal.DeliveryArea = *req.DeliveryArea
	}

	if err := s.mealRepo.Update(db, meal); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return meal, nil
}

func (s *MealServiceImpl) Delete(db *gorm.DB, claims *auth.Claims, mealID string) error {
	if _, err := s.findOwned(db, claims, mealID); err != nil {
		return err
	}

	if err := s.mealRepo.Delete(db, mealID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// findOwned loads the meal and enforces the owner gate before any
// mutation: the stored owner email must equal the caller's, role alone is
// not enough.
func (s *MealServiceImpl) findOwned(db *gorm.DB, claims *auth.Claims, mealID string) (*models.Meal, error) {
	meal, err := s.mealRepo.FindByID(db, mealID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrMealNotFound) {
			return nil, appErrors.ErrMealNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if meal.UserEmail != claims.Email {
		return nil, appErrors.ErrNotMealOwner
	}
	return meal, nil
}
