package controllers

import (
	"net/http"

	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/gin-gonic/gin"
)

// UploadController serves product images out of the in-memory image store.
type UploadController struct {
	images repository.ImageStore
}

// NewUploadController creates a new UploadController.
func NewUploadController(images repository.ImageStore) *UploadController {
	return &UploadController{images: images}
}

// Serve handles GET /uploads/:imageID.
func (uc *UploadController) Serve(c *gin.Context) {
	img, ok := uc.images.FindByID(c.Param("imageID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
