package database

import (
	"chefbazaar_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Order{},
		&models.Payment{},
		&models.Review{},
		&models.Favorite{},
		&models.RoleRequest{},
	)
}
