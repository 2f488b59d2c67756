package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterImageRoutes(router *gin.Engine, imageController *controllers.ImageController) {
	imageRoutes := router.Group("/images")
	{
		imageRoutes.GET("", imageController.GetAllImages)
		imageRoutes.POST("", imageController.UploadImage)
		imageRoutes.DELETE("/:id", imageController.DeleteImage)
	}
}
