package services_test

import (
	"os"
	"testing"

	"chefbazaar_backend/database"
	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/config"
	"chefbazaar_backend/internal/logger"
	"chefbazaar_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg

	logger.Init("development")

	os.Exit(m.Run())
}

// setupDB opens a fresh in-memory database per test so tests stay
// independent and parallel-safe.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole, chefID string) *models.User {
	t.Helper()

	user := &models.User{
		Name:   "Test " + email,
		Email:  email,
		Role:   role,
		Status: models.UserStatusActive,
		ChefID: chefID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// claimsFor builds the claim set a login at this instant would issue.
func claimsFor(user *models.User) *auth.Claims {
	claims := &auth.Claims{
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Status: user.Status,
		ChefID: user.ChefID,
	}
	claims.Subject = user.ID
	return claims
}
