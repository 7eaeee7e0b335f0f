package services

import (
	"time"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services/dto"
	"chefbazaar_backend/internal/statemachine"

	"gorm.io/gorm"
)

type OrderService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateOrderRequest) (*models.Order, error)
	MyOrders(db *gorm.DB, claims *auth.Claims) ([]models.Order, error)
	ChefOrders(db *gorm.DB, claims *auth.Claims) ([]models.Order, error)
	// UpdateStatus advances the order along the transition table. Only the
	// chef whose chefId matches the order's may transition it; the stored
	// status is untouched on any rejection.
	UpdateStatus(db *gorm.DB, claims *auth.Claims, orderID string, newStatus models.OrderStatus) (*models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo repositories.OrderRepository
	mealRepo  repositories.MealRepository
	notifier  Notifier
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	mealRepo repositories.MealRepository,
	notifier Notifier,
) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		mealRepo:  mealRepo,
		notifier:  notifier,
	}
}

func (s *OrderServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateOrderRequest) (*models.Order, error) {
	meal, err := s.mealRepo.FindByID(db, req.FoodID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrMealNotFound) {
			return nil, appErrors.ErrMealNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Meal name, price and chefId are captured here once; later meal edits
	// never change this order.
	order := &models.Order{
		FoodID:        meal.ID,
		MealName:      meal.FoodName,
		Price:         meal.Price,
		Quantity:      req.Quantity,
		ChefID:        meal.ChefID,
		UserEmail:     claims.Email,
		UserAddress:   req.UserAddress,
		OrderStatus:   models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		OrderTime:     time.Now(),
	}

	if err := s.orderRepo.Create(db, order); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return order, nil
}

func (s *OrderServiceImpl) MyOrders(db *gorm.DB, claims *auth.Claims) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByCustomer(db, claims.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return orders, nil
}

func (s *OrderServiceImpl) ChefOrders(db *gorm.DB, claims *auth.Claims) ([]models.Order, error) {
	if claims.ChefID == "" {
		return nil, appErrors.ErrChefIDMissing
	}

	orders, err := s.orderRepo.FindByChef(db, claims.ChefID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return orders, nil
}

func (s *OrderServiceImpl) UpdateStatus(db *gorm.DB, claims *auth.Claims, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !statemachine.ValidStatus(newStatus) {
		return nil, appErrors.NewBadRequestError("Unknown order status: " + string(newStatus))
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, appErrors.ErrOrderNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Transition authority: the chef named on the order, nobody else.
	// The customer who placed it can never transition it.
	if claims.ChefID == "" || order.ChefID != claims.ChefID {
		return nil, appErrors.ErrNotOrderChef
	}

	if err := statemachine.CanTransition(order.OrderStatus, newStatus); err != nil {
		return nil, appErrors.NewBadRequestError(err.Error())
	}

	order.OrderStatus = newStatus
	if err := s.orderRepo.Update(db, order); err != nil {
		return nil, appErrors.InternalError(err)
	}

	// Fire-and-forget fan-out; a disconnected listener just misses the
	// event and falls back to polling.
	s.notifier.PublishOrderStatus(order.ID, order.OrderStatus)

	return order, nil
}
