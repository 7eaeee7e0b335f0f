package services

import (
	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(db *gorm.DB) ([]models.User, error)
	// FlagFraud marks a user as fraud. Admins cannot be flagged. The flag
	// only takes effect for the target once their credential is reissued.
	FlagFraud(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) FlagFraud(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if user.Role == models.UserRoleAdmin {
		return appErrors.ErrCannotFlagAdmin
	}

	user.Status = models.UserStatusFraud
	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}
