package auth

import (
	"errors"
	"time"

	"chefbazaar_backend/internal/config"
	"chefbazaar_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed claim set issued at login. It is the sole source of
// role/status/chefId for every authorization decision until it expires:
// directory changes (role grant, fraud flag) only take effect once the user
// re-authenticates and a fresh credential is issued.
type Claims struct {
	Email  string            `json:"email"`
	Name   string            `json:"name"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
	ChefID string            `json:"chefId,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the claim set.
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken signs a claim set for the given user record.
func GenerateToken(user *models.User) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.TTL) * time.Hour

	claims := Claims{
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Status: user.Status,
		ChefID: user.ChefID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken verifies the signature and expiry and returns the claim set.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
