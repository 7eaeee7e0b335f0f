package services

import (
	"time"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"gorm.io/gorm"
)

type FavoriteService interface {
	List(db *gorm.DB, claims *auth.Claims) ([]models.Favorite, error)
	Add(db *gorm.DB, claims *auth.Claims, req *dto.AddFavoriteRequest) (*models.Favorite, error)
	Remove(db *gorm.DB, claims *auth.Claims, favoriteID string) error
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
	}
}

func (s *FavoriteServiceImpl) List(db *gorm.DB, claims *auth.Claims) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.FindByUser(db, claims.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return favorites, nil
}

func (s *FavoriteServiceImpl) Add(db *gorm.DB, claims *auth.Claims, req *dto.AddFavoriteRequest) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserEmail: claims.Email,
		MealID:    req.MealID,
		MealName:  req.MealName,
		ChefID:    req.ChefID,
		ChefName:  req.ChefName,
		Price:     req.Price,
		AddedTime: time.Now(),
	}

	if err := s.favoriteRepo.Create(db, favorite); err != nil {
		if appErrors.Is(err, repositories.ErrFavoriteAlreadyExists) {
			return nil, appErrors.ErrFavoriteExists
		}
		return nil, appErrors.InternalError(err)
	}
	return favorite, nil
}

func (s *FavoriteServiceImpl) Remove(db *gorm.DB, claims *auth.Claims, favoriteID string) error {
	// Removing an id that does not exist, or that belongs to another
	// user, is a silent no-op.
	if _, err := s.favoriteRepo.DeleteOwned(db, favoriteID, claims.Email); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}
