package dto

import "chefbazaar_backend/internal/models"

type CreateOrderRequest struct {
	FoodID      string `json:"foodId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	UserAddress string `json:"userAddress" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=accepted cancelled delivered"`
}

// OrderStatusEvent is the fan-out payload pushed to connected listeners
// whenever an order status changes.
type OrderStatusEvent struct {
	Event     string             `json:"event"`
	OrderID   string             `json:"orderId"`
	NewStatus models.OrderStatus `json:"status"`
}
