package services

import (
	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"

	"gorm.io/gorm"
)

type PaymentService interface {
	// Checkout returns a provider-opaque checkout reference. No real
	// gateway call is made yet.
	Checkout(req *dto.CheckoutRequest) *dto.CheckoutResponse
	// RecordSuccess handles the gateway success callback: it marks the
	// order paid and appends an immutable payment record. The callback is
	// not idempotent; a replay appends a second record. Known gap, kept
	// as designed and covered by tests.
	RecordSuccess(db *gorm.DB, req *dto.PaymentSuccessRequest) error
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	orderRepo repositories.OrderRepository,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

func (s *PaymentServiceImpl) Checkout(req *dto.CheckoutRequest) *dto.CheckoutResponse {
	return &dto.CheckoutResponse{
		CheckoutURL: "https://stripe.com/checkout",
		OrderID:     req.OrderID,
		Amount:      req.Amount,
	}
}

func (s *PaymentServiceImpl) RecordSuccess(db *gorm.DB, req *dto.PaymentSuccessRequest) error {
	order, err := s.orderRepo.FindByID(db, req.OrderID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrOrderNotFound) {
			return appErrors.ErrOrderNotFound
		}
		return appErrors.InternalError(err)
	}

	// Unconditional: paymentStatus is not gated by orderStatus, and no
	// check that the amount matches the order total.
	order.PaymentStatus = models.PaymentStatusPaid
	if err := s.orderRepo.Update(db, order); err != nil {
		return appErrors.InternalError(err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	payment := &models.Payment{
		OrderID:   order.ID,
		UserEmail: order.UserEmail,
		Amount:    req.Amount,
		Currency:  currency,
		Status:    "paid",
		Provider:  "stripe",
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}
