package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDelivered OrderStatus = "delivered"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order links a customer, a meal and a chef. MealName, Price and ChefID are
// denormalized from the meal at creation time: later meal edits never
// retroactively change an existing order. OrderStatus only moves along the
// transition table in internal/statemachine and only at the hand of the
// chef whose ChefID matches; PaymentStatus moves pending→paid independently
// via the payment-success callback.
type Order struct {
	BaseModel
	FoodID        string        `gorm:"not null;index" json:"foodId"`
	MealName      string        `gorm:"not null" json:"mealName"`
	Price         float64       `gorm:"not null" json:"price"`
	Quantity      int           `gorm:"not null;check:quantity >= 1" json:"quantity"`
	ChefID        string        `gorm:"not null;index" json:"chefId"`
	UserEmail     string        `gorm:"not null;index" json:"userEmail"`
	UserAddress   string        `gorm:"not null" json:"userAddress"`
	OrderStatus   OrderStatus   `gorm:"type:varchar(20);default:'pending'" json:"orderStatus"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	OrderTime     time.Time     `json:"orderTime"`
}
