package repositories

import (
	"errors"

	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	FindByID(db *gorm.DB, id string) (*models.Order, error)
	FindByCustomer(db *gorm.DB, userEmail string) ([]models.Order, error)
	FindByChef(db *gorm.DB, chefID string) ([]models.Order, error)
	Update(db *gorm.DB, order *models.Order) error
	CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error)
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByCustomer(db *gorm.DB, userEmail string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("user_email = ?", userEmail).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) FindByChef(db *gorm.DB, chefID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("chef_id = ?", chefID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) Update(db *gorm.DB, order *models.Order) error {
	return db.Save(order).Error
}

func (r *OrderRepositoryImpl) CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var count int64
	if err := db.Model(&models.Order{}).Where("order_status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
