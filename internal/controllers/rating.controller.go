package controllers

import (
	"math"
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	repo repository.RatingRepository
}

func NewRatingController(repo repository.RatingRepository) *RatingController {
	return &RatingController{repo: repo}
}

type submitRatingRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ArticleID uint `json:"article_id" binding:"required"`
	Score     int  `json:"score" binding:"required"`
}

// SubmitRating godoc
// @Summary Rate an article
// @Description Upsert keyed on (user, article); re-rating overwrites the score
// @Tags rating
// @Accept json
// @Produce json
// @Success 200 {object} models.Rating
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /ratings [post]
func (rc *RatingController) SubmitRating(c *gin.Context) {
	var req submitRatingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := models.Rating{
		UserID:    req.UserID,
		ArticleID: req.ArticleID,
		Score:     req.Score,
	}

	if err := rc.repo.Upsert(&rating); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetRatingSummary godoc
// @Summary Average rating for an article
// @Description Arithmetic mean rounded to one decimal, 0 when unrated
// @Tags rating
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {object} map[string]interface{} "{average, count}"
// @Router /ratings/{articleId} [get]
func (rc *RatingController) GetRatingSummary(c *gin.Context) {
	articleID, ok := parseParamID(c, "articleId")
	if !ok {
		return
	}

	scores, err := rc.repo.ScoresByArticle(articleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	average, count := AverageScore(scores)
	c.JSON(http.StatusOK, gin.H{"average": average, "count": count})
}

// AverageScore computes the arithmetic mean of the scores rounded to
// one decimal place. An empty slice averages to 0.
func AverageScore(scores []int) (float64, int) {
	if len(scores) == 0 {
		return 0, 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	average := math.Round(float64(sum)/float64(len(scores))*10) / 10
	return average, len(scores)
}
