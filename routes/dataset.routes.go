package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterDatasetRoutes wires the file-backed variant under /api.
func RegisterDatasetRoutes(router *gin.Engine, datasetController *controllers.DatasetController) {
	api := router.Group("/api")
	{
		api.GET("/articles", datasetController.ListArticles)
		api.POST("/articles", datasetController.CreateArticle)
		api.GET("/articles/:id", datasetController.GetArticle)
		api.PUT("/articles/:id", datasetController.UpdateArticle)
		api.DELETE("/articles/:id", datasetController.DeleteArticle)

		api.GET("/users", datasetController.ListUsers)
		api.PUT("/users/:id", datasetController.ToggleUser)

		api.GET("/subscribers", datasetController.ListSubscribers)
		api.POST("/subscribers", datasetController.AddSubscriber)

		api.GET("/export", datasetController.ExportData)
		api.GET("/health", datasetController.Health)
	}
}
