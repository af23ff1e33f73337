package middleware

import (
	"net/http"

	"carebridge-org/carebridge/models"

	"github.com/gin-gonic/gin"
)

// RequireRole is the single authorization predicate used by protected
// route groups. It reads the role placed in the context by
// AuthMiddleware and aborts with 403 unless it matches one of the
// allowed roles. Admins pass every check.
func RequireRole(allowed ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User role not found in context"})
			return
		}

		roleStr, ok := roleValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid role format"})
			return
		}

		role, err := models.RoleTypeFromString(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, candidate := range allowed {
			if role == candidate {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this resource"})
	}
}
