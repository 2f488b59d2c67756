package controllers

import (
	"log"
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"
	"sciencepress/internal/storage"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	repo  repository.ImageRepository
	blobs storage.BlobStore
}

func NewImageController(repo repository.ImageRepository, blobs storage.BlobStore) *ImageController {
	return &ImageController{repo: repo, blobs: blobs}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Store the file in the blob store and record its URL
// @Tags image
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} models.Image
// @Failure 400 {object} map[string]interface{} "No file uploaded"
// @Router /images [post]
func (ic *ImageController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	name, url, err := ic.blobs.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image := models.Image{
		Filename: file.Filename,
		URL:      url,
	}

	if err := ic.repo.Create(&image); err != nil {
		// The blob already landed on disk; remove it so a failed insert
		// does not leak storage.
		if cleanupErr := ic.blobs.Delete(name); cleanupErr != nil {
			log.Printf("Failed to clean up orphaned blob %s: %v", name, cleanupErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// GetAllImages godoc
// @Summary List uploaded images
// @Description Retrieve all image records, newest first
// @Tags image
// @Produce json
// @Success 200 {array} models.Image
// @Router /images [get]
func (ic *ImageController) GetAllImages(c *gin.Context) {
	images, err := ic.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

// DeleteImage godoc
// @Summary Delete an image record
// @Tags image
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]interface{} "{success: true}"
// @Router /images/{id} [delete]
func (ic *ImageController) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ic.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
