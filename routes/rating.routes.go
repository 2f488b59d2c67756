package routes

import (
	"sciencepress/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRatingRoutes(router *gin.Engine, ratingController *controllers.RatingController) {
	ratingRoutes := router.Group("/ratings")
	{
		ratingRoutes.POST("", ratingController.SubmitRating)
		ratingRoutes.GET("/:articleId", ratingController.GetRatingSummary)
	}
}
