package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	commentRoutes := router.Group("/comments")
	{
		commentRoutes.POST("", commentController.AddComment)
		commentRoutes.GET("/:articleId", commentController.GetCommentsByArticle)
		commentRoutes.DELETE("/:id", commentController.DeleteComment)
	}
}
