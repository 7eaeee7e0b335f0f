package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	RequestHandler  *RequestHandler
	MealHandler     *MealHandler
	OrderHandler    *OrderHandler
	PaymentHandler  *PaymentHandler
	ReviewHandler   *ReviewHandler
	FavoriteHandler *FavoriteHandler
	StatsHandler    *StatsHandler
	HealthHandler   *HealthHandler
}
