package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliento-portal/services"
)

// FileController handles project file upload and download. Deletion goes
// through the project PATCH endpoint.
type FileController struct {
	files *services.FileService
}

// NewFileController creates a new file controller instance
func NewFileController(files *services.FileService) *FileController {
	return &FileController{files: files}
}

// RegisterRoutes registers file routes on an authenticated group
func (ctrl *FileController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:id/files", ctrl.UploadFile)
	router.GET("/projects/:id/files/:fileId", ctrl.DownloadFile)
}

// UploadFile streams one multipart file into the blob store and appends the
// entry to the project
func (ctrl *FileController) UploadFile(c *gin.Context) {
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

	entry, err := ctrl.files.Upload(c.Request.Context(), account, c.Param("id"),
		file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"file":   entry,
	})
}

// DownloadFile streams a stored file back to a caller with read access
func (ctrl *FileController) DownloadFile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	body, mimeType, filename, err := ctrl.files.Download(c.Request.Context(), account,
		c.Param("id"), c.Param("fileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.DataFromReader(http.StatusOK, -1, mimeType, body, nil)
}
