package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cliento-portal/repositories"
	"github.com/cliento-portal/services"
)

// AuthMiddleware validates the session token (HttpOnly cookie or bearer
// header) and resolves the caller to a stored account. The account is set on
// the context for downstream handlers.
func AuthMiddleware(accounts *repositories.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		account, err := accounts.FindByID(claims.AccountID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Account not found",
			})
			c.Abort()
			return
		}

		c.Set("account", account)
		c.Set("accountId", account.ID)
		c.Set("role", string(account.Role))
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
