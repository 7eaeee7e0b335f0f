package services

import "chefbazaar_backend/internal/models"

// Notifier is the fan-out sink for order status events. Publishing is
// best-effort: implementations must never block or return an error to the
// triggering request, and delivery to listeners is unacknowledged and
// unpersisted.
type Notifier interface {
	PublishOrderStatus(orderID string, newStatus models.OrderStatus)
}

// NoopNotifier drops every event. Used when no real-time channel is wired.
type NoopNotifier struct{}

func (NoopNotifier) PublishOrderStatus(string, models.OrderStatus) {}
