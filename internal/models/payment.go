package models

// Payment is an append-only record of a successful payment callback.
// Rows are never updated or deleted. There is deliberately no uniqueness
// constraint on OrderID: the success callback is not idempotent and a
// replayed callback appends a second record (known gap, covered by tests).
type Payment struct {
	BaseModel
	OrderID   string  `gorm:"not null;index" json:"orderId"`
	UserEmail string  `gorm:"not null;index" json:"userEmail"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Currency  string  `gorm:"default:'usd'" json:"currency"`
	Status    string  `gorm:"not null" json:"status"`
	Provider  string  `gorm:"default:'stripe'" json:"provider"`
}
