package services

import (
	"chefbazaar_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	RequestService  RequestService
	MealService     MealService
	OrderService    OrderService
	PaymentService  PaymentService
	ReviewService   ReviewService
	FavoriteService FavoriteService
	StatsService    StatsService
	EmailService    email.Provider
	Notifier        Notifier
}
