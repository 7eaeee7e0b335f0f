package middleware

import (
	"net/http"
	"strings"

	"chefbazaar_backend/internal/auth"
	"chefbazaar_backend/internal/logger"
	"chefbazaar_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "claims"

// AuthMiddleware verifies the bearer credential and stores the claim set in
// the gin context. The claim set is trusted as-is for the rest of the
// request: role and status are not re-read from the directory.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set("userID", claims.UserID())
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID()))
		c.Next()
	}
}

// RequireRoles restricts the route to callers holding one of the listed
// roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	gate := auth.Gate{Roles: roles}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		if !gate.RoleAllowed(claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

// ForbidFraud blocks callers whose credential carries the fraud status.
// The check reads the claim set, so a freshly flagged user keeps access
// until their credential expires or is reissued.
func ForbidFraud() gin.HandlerFunc {
	gate := auth.Gate{ForbidFraud: true}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no claims"})
			return
		}

		if !gate.StatusAllowed(claims.Status) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account flagged as fraud"})
			return
		}

		c.Next()
	}
}

// GetClaims extracts the verified claim set from the gin context.
// Returns nil when AuthMiddleware did not run.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserID extracts the caller's user ID from the gin context.
func GetUserID(c *gin.Context) string {
	claims := GetClaims(c)
	if claims == nil {
		return ""
	}
	return claims.UserID()
}
