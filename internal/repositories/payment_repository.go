package repositories

import (
	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository is append-only: payments are created and aggregated,
// never updated or deleted.
type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByOrder(db *gorm.DB, orderID string) ([]models.Payment, error)
	SumAmounts(db *gorm.DB) (float64, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByOrder(db *gorm.DB, orderID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := db.Where("order_id = ?", orderID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) SumAmounts(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
