package services

import (
	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	// Login finds or creates the directory record for a set of verified
	// identity claims and issues a session credential.
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	switch {
	case err == nil:
		// Existing record: refresh profile fields only. Role, status and
		// chefId are never touched by login.
		user.Name = req.Name
		user.PhotoURL = req.PhotoURL
		if req.Address != "" {
			user.Address = req.Address
		}
		if err := s.userRepo.Update(db, user); err != nil {
			return nil, appErrors.InternalError(err)
		}

	case appErrors.Is(err, repositories.ErrUserNotFound):
		user = &models.User{
			Name:     req.Name,
			Email:    req.Email,
			PhotoURL: req.PhotoURL,
			Address:  req.Address,
			Role:     models.UserRoleUser,
			Status:   models.UserStatusActive,
		}
		if err := s.userRepo.Create(db, user); err != nil {
			return nil, appErrors.InternalError(err)
		}

	default:
		return nil, appErrors.InternalError(err)
	}

	// The credential embeds role/status/chefId for its whole validity
	// window; directory changes only surface on reissue.
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}
