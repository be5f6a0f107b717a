package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cliento-portal/lib/invoice"
	"github.com/cliento-portal/lib/storage"
	"github.com/cliento-portal/middleware"
	"github.com/cliento-portal/repositories"
	"github.com/cliento-portal/services"
)

// RegisterRoutes wires repositories, services and controllers onto all v1
// API routes. The database handle and blob store are injected by main.
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, blobs storage.BlobStore) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	accountRepo := repositories.NewAccountRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	authService := services.NewAuthService(accountRepo)
	accountService := services.NewAccountService(accountRepo, blobs)
	projectService := services.NewProjectService(projectRepo, accountRepo)
	listingService := services.NewListingService(projectRepo)
	updateService := services.NewUpdateService(projectRepo, accountRepo, blobs)
	fileService := services.NewFileService(projectRepo, blobs)
	invoiceService := services.NewInvoiceService(projectRepo, accountRepo, invoice.NewHTMLRenderer())

	// Auth endpoints
	authController := NewAuthController(authService)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(accountRepo), authController.GetCurrentAccount)
	}

	// Everything else requires an authenticated caller
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware(accountRepo))

	NewAccountController(accountService).RegisterRoutes(authRouter)
	NewProjectController(projectService, listingService, updateService, invoiceService).RegisterRoutes(authRouter)
	NewFileController(fileService).RegisterRoutes(authRouter)
}
