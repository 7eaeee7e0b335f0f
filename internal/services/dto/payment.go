package dto

type CheckoutRequest struct {
	OrderID string  `json:"orderId" validate:"required"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

type CheckoutResponse struct {
	CheckoutURL string  `json:"checkoutUrl"`
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
}

// PaymentSuccessRequest is the webhook-style callback body. It arrives
// unauthenticated, in the spirit of a gateway callback.
type PaymentSuccessRequest struct {
	OrderID  string  `json:"orderId" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty"`
}
