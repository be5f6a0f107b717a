package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/middleware"
	"github.com/cliento-portal/services"
)

// ProjectController handles project CRUD, the partial-update endpoint and
// invoice generation.
type ProjectController struct {
	projects *services.ProjectService
	listing  *services.ListingService
	updates  *services.UpdateService
	invoices *services.InvoiceService
}

// NewProjectController creates a new project controller instance
func NewProjectController(projects *services.ProjectService, listing *services.ListingService, updates *services.UpdateService, invoices *services.InvoiceService) *ProjectController {
	return &ProjectController{
		projects: projects,
		listing:  listing,
		updates:  updates,
		invoices: invoices,
	}
}

// RegisterRoutes registers project routes on an authenticated group
func (ctrl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/projects")
	{
		group.GET("", ctrl.ListProjects)
		group.POST("", middleware.DeveloperMiddleware(), ctrl.CreateProject)
		group.GET("/:id", ctrl.GetProject)
		group.PATCH("/:id", ctrl.UpdateProject)
		group.DELETE("/:id", middleware.DeveloperMiddleware(), ctrl.DeleteProject)
		group.GET("/:id/invoice", middleware.DeveloperMiddleware(), ctrl.GenerateInvoice)
	}
}

// ListProjects returns the caller's visible projects in canonical order
func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	projects, err := ctrl.listing.ListProjects(account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"projects": projects,
	})
}

// CreateProject creates a new project for the calling developer
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	project, err := ctrl.projects.CreateProject(account, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"project": project,
	})
}

// GetProject returns one project with account references resolved
func (ctrl *ProjectController) GetProject(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	detail, err := ctrl.projects.GetProjectDetail(account, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"project": detail,
	})
}

// UpdateProject applies one partial-update payload to a project
func (ctrl *ProjectController) UpdateProject(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var patch dto.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	project, err := ctrl.updates.Apply(c.Request.Context(), account, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"project": project,
	})
}

// DeleteProject removes a project
func (ctrl *ProjectController) DeleteProject(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	if err := ctrl.projects.DeleteProject(account, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// GenerateInvoice renders the project invoice document
func (ctrl *ProjectController) GenerateInvoice(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	doc, filename, err := ctrl.invoices.Generate(account, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
