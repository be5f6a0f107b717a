package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliento-portal/models"
)

// DeveloperMiddleware ensures the caller has the developer role. Use after
// AuthMiddleware.
func DeveloperMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != string(models.RoleDeveloper) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Developer role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
