package services

import (
	"fmt"
	"math/rand"
	"time"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/email"
	"chefbazaar_backend/internal/logger"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// chefIDAttempts bounds the collision-checked generation loop before
// falling back to a UUID suffix.
const chefIDAttempts = 10

type RequestService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateRoleRequest) (*models.RoleRequest, error)
	List(db *gorm.DB) ([]models.RoleRequest, error)
	// Decide approves or rejects a pending request. Both the request and
	// the directory mutation happen in one transaction; a request that
	// already left pending is a conflict and mutates nothing.
	Decide(db *gorm.DB, requestID, action string) (*dto.DecideRoleResponse, error)
}

type RequestServiceImpl struct {
	requestRepo   repositories.RequestRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) RequestService {
	return &RequestServiceImpl{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *RequestServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateRoleRequest) (*models.RoleRequest, error) {
	// Multiple simultaneous pending requests per user are allowed.
	request := &models.RoleRequest{
		UserName:      claims.Name,
		UserEmail:     claims.Email,
		RequestType:   req.RequestType,
		RequestStatus: models.RequestStatusPending,
		RequestTime:   time.Now(),
	}

	if err := s.requestRepo.Create(db, request); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) List(db *gorm.DB) ([]models.RoleRequest, error) {
	requests, err := s.requestRepo.FindAll(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return requests, nil
}

func (s *RequestServiceImpl) Decide(db *gorm.DB, requestID, action string) (*dto.DecideRoleResponse, error) {
	var resp *dto.DecideRoleResponse
	var notify func()

	err := db.Transaction(func(tx *gorm.DB) error {
		request, err := s.requestRepo.FindByID(tx, requestID)
		if err != nil {
			if appErrors.Is(err, repositories.ErrRequestNotFound) {
				return appErrors.ErrRequestNotFound
			}
			return appErrors.InternalError(err)
		}

		if request.RequestStatus != models.RequestStatusPending {
			return appErrors.ErrRequestDecided
		}

		if action == "reject" {
			request.RequestStatus = models.RequestStatusRejected
			if err := s.requestRepo.Update(tx, request); err != nil {
				return appErrors.InternalError(err)
			}
			resp = &dto.DecideRoleResponse{Message: "Request rejected"}
			notify = s.decisionNotifier(request, false)
			return nil
		}

		user, err := s.userRepo.FindByEmail(tx, request.UserEmail)
		if err != nil {
			if appErrors.Is(err, repositories.ErrUserNotFound) {
				return appErrors.ErrUserNotFound
			}
			return appErrors.InternalError(err)
		}

		if request.RequestType == models.RequestTypeChef {
			user.Role = models.UserRoleChef
			if user.ChefID == "" {
				// chefId is assigned exactly once per user lifetime.
				chefID, err := s.generateChefID(tx)
				if err != nil {
					return appErrors.InternalError(err)
				}
				user.ChefID = chefID
			}
		} else {
			user.Role = models.UserRoleAdmin
		}

		if err := s.userRepo.Update(tx, user); err != nil {
			return appErrors.InternalError(err)
		}

		request.RequestStatus = models.RequestStatusApproved
		if err := s.requestRepo.Update(tx, request); err != nil {
			return appErrors.InternalError(err)
		}

		resp = &dto.DecideRoleResponse{Message: "Request approved", User: user}
		notify = s.decisionNotifier(request, true)
		return nil
	})
	if err != nil {
		var appErr *appErrors.AppError
		if appErrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.InternalError(err)
	}

	// Mail only after the transaction committed, and never let it fail
	// the request.
	if notify != nil {
		go notify()
	}

	return resp, nil
}

func (s *RequestServiceImpl) decisionNotifier(request *models.RoleRequest, approved bool) func() {
	to, name, reqType := request.UserEmail, request.UserName, request.RequestType
	return func() {
		if err := s.emailProvider.SendRequestDecision(to, name, reqType, approved); err != nil {
			logger.Warn("failed to send request decision email", "email", to, "error", err)
		}
	}
}

// generateChefID produces a short chef identifier with a collision check,
// retrying on conflict and falling back to a UUID suffix when the short
// space is exhausted.
func (s *RequestServiceImpl) generateChefID(db *gorm.DB) (string, error) {
	for i := 0; i < chefIDAttempts; i++ {
		candidate := fmt.Sprintf("chef-%d", 1000+rand.Intn(9000))
		exists, err := s.userRepo.ChefIDExists(db, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "chef-" + uuid.NewString()[:8], nil
}
