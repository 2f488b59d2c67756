package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFavoriteRoutes(router *gin.Engine, favoriteController *controllers.FavoriteController) {
	favoriteRoutes := router.Group("/favorites")
	{
		favoriteRoutes.POST("", favoriteController.AddFavorite)
		favoriteRoutes.GET("/:userId", favoriteController.GetFavoritesByUser)
		favoriteRoutes.DELETE("", favoriteController.RemoveFavorite)
	}
}
