package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/articles")
	{
		articleRoutes.POST("", articleController.CreateArticle)
		articleRoutes.GET("", articleController.GetPublishedArticles)
		articleRoutes.GET("/all", articleController.GetAllArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
		articleRoutes.PUT("/:id", articleController.UpdateArticle)
		articleRoutes.PUT("/:id/view", articleController.IncrementView)
		articleRoutes.DELETE("/:id", articleController.DeleteArticle)
	}
}
