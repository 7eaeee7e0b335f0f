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

type ReviewService interface {
	ListByMeal(db *gorm.DB, mealID string) ([]models.Review, error)
	MyReviews(db *gorm.DB, claims *auth.Claims) ([]models.Review, error)
	Create(db *gorm.DB, claims *auth.Claims, mealID string, req *dto.CreateReviewRequest) (*models.Review, error)
	Update(db *gorm.DB, claims *auth.Claims, reviewID string, req *dto.UpdateReviewRequest) (*models.Review, error)
	Delete(db *gorm.DB, claims *auth.Claims, reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

func (s *ReviewServiceImpl) ListByMeal(db *gorm.DB, mealID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByMeal(db, mealID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) MyReviews(db *gorm.DB, claims *auth.Claims) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByReviewer(db, claims.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) Create(db *gorm.DB, claims *auth.Claims, mealID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	// Any authenticated caller may review any meal; several reviews for
	// the same meal by one reviewer are allowed.
	review := &models.Review{
		FoodID:        mealID,
		ReviewerName:  claims.Name,
		ReviewerImage: req.ReviewerImage,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Date:          time.Now(),
		UserEmail:     claims.Email,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return review, nil
}

func (s *ReviewServiceImpl) Update(db *gorm.DB, claims *auth.Claims, reviewID string, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.findOwned(db, claims, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(db, review); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return review, nil
}

func (s *ReviewServiceImpl) Delete(db *gorm.DB, claims *auth.Claims, reviewID string) error {
	if _, err := s.findOwned(db, claims, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(db, reviewID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *ReviewServiceImpl) findOwned(db *gorm.DB, claims *auth.Claims, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, appErrors.ErrReviewNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if review.UserEmail != claims.Email {
		return nil, appErrors.ErrNotReviewOwner
	}
	return review, nil
}
