package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/services"
)

// AccountController handles self-service on the caller's account and the
// secret-free account listings.
type AccountController struct {
	accounts *services.AccountService
}

// NewAccountController creates a new account controller instance
func NewAccountController(accounts *services.AccountService) *AccountController {
	return &AccountController{accounts: accounts}
}

// RegisterRoutes registers account routes on an authenticated group
func (ctrl *AccountController) RegisterRoutes(router *gin.RouterGroup) {
	router.PATCH("/account", ctrl.UpdateAccount)
	router.DELETE("/account", ctrl.DeleteAccount)
	router.POST("/account/photo", ctrl.UploadPhoto)
	router.GET("/account/photo", ctrl.GetPhoto)
	router.DELETE("/account/photo", ctrl.DeletePhoto)

	router.GET("/accounts", ctrl.ListAccounts)
	router.GET("/developers", ctrl.ListDevelopers)
	router.GET("/clients", ctrl.ListClients)
}

// UpdateAccount applies a partial update to the caller's own profile
func (ctrl *AccountController) UpdateAccount(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	updated, err := ctrl.accounts.UpdateProfile(account, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"account": updated,
	})
}

// DeleteAccount removes the caller's own account
func (ctrl *AccountController) DeleteAccount(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	if err := ctrl.accounts.DeleteAccount(c.Request.Context(), account); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("access_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Account deleted",
	})
}

// UploadPhoto stores a new avatar photo for the caller
func (ctrl *AccountController) UploadPhoto(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file received",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	ref, err := ctrl.accounts.SetAvatar(c.Request.Context(), account, file,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"avatarRef": ref,
	})
}

// GetPhoto streams the caller's avatar photo
func (ctrl *AccountController) GetPhoto(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	body, mimeType, err := ctrl.accounts.GetAvatar(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, mimeType, body, nil)
}

// DeletePhoto removes the caller's avatar photo
func (ctrl *AccountController) DeletePhoto(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	if err := ctrl.accounts.RemoveAvatar(c.Request.Context(), account); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Photo removed",
	})
}

// ListAccounts returns every account as a secret-free summary
func (ctrl *AccountController) ListAccounts(c *gin.Context) {
	summaries, err := ctrl.accounts.ListSummaries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "accounts": summaries})
}

// ListDevelopers returns all developer accounts
func (ctrl *AccountController) ListDevelopers(c *gin.Context) {
	summaries, err := ctrl.accounts.ListByRole(models.RoleDeveloper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "accounts": summaries})
}

// ListClients returns all client accounts
func (ctrl *AccountController) ListClients(c *gin.Context) {
	summaries, err := ctrl.accounts.ListByRole(models.RoleClient)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "accounts": summaries})
}
