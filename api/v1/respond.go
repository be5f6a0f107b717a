package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cliento-portal/lib/logger"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/services"
)

// currentAccount returns the account resolved by AuthMiddleware.
func currentAccount(c *gin.Context) (models.Account, bool) {
	value, exists := c.Get("account")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return models.Account{}, false
	}
	account, ok := value.(models.Account)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return models.Account{}, false
	}
	return account, true
}

// respondError maps a service error onto its HTTP shape. Store failures are
// logged with their cause and surfaced generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidTarget), errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		logger.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Something went wrong, please try again"})
	}
}
