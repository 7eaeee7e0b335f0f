package services

import (
	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"gorm.io/gorm"
)

type StatsService interface {
	Platform(db *gorm.DB) (*dto.PlatformStatsResponse, error)
}

type StatsServiceImpl struct {
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *StatsServiceImpl) Platform(db *gorm.DB) (*dto.PlatformStatsResponse, error) {
	totalPayment, err := s.paymentRepo.SumAmounts(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	totalUsers, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	pending, err := s.orderRepo.CountByStatus(db, models.OrderStatusPending)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	delivered, err := s.orderRepo.CountByStatus(db, models.OrderStatusDelivered)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.PlatformStatsResponse{
		TotalPayment:    totalPayment,
		TotalUsers:      totalUsers,
		OrdersPending:   pending,
		OrdersDelivered: delivered,
	}, nil
}
