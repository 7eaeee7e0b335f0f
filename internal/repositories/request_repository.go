package repositories

import (
	"errors"

	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestRepository interface {
	Create(db *gorm.DB, request *models.RoleRequest) error
	FindByID(db *gorm.DB, id string) (*models.RoleRequest, error)
	FindAll(db *gorm.DB) ([]models.RoleRequest, error)
	Update(db *gorm.DB, request *models.RoleRequest) error
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) Create(db *gorm.DB, request *models.RoleRequest) error {
	return db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.RoleRequest, error) {
	var request models.RoleRequest
	if err := db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindAll(db *gorm.DB) ([]models.RoleRequest, error) {
	var requests []models.RoleRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepositoryImpl) Update(db *gorm.DB, request *models.RoleRequest) error {
	return db.Save(request).Error
}
