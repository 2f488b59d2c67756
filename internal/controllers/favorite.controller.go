package controllers

import (
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	repo repository.FavoriteRepository
}

func NewFavoriteController(repo repository.FavoriteRepository) *FavoriteController {
	return &FavoriteController{repo: repo}
}

type favoriteRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ArticleID uint `json:"article_id" binding:"required"`
}

// AddFavorite godoc
// @Summary Mark an article as favorite
// @Description Adding the same pair twice returns the existing row
// @Tags favorite
// @Accept json
// @Produce json
// @Success 201 {object} models.Favorite
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /favorites [post]
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	var req favoriteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite := models.Favorite{
		UserID:    req.UserID,
		ArticleID: req.ArticleID,
	}

	if err := fc.repo.Add(&favorite); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// GetFavoritesByUser godoc
// @Summary List a user's favorites
// @Description Favorite rows joined with the full article
// @Tags favorite
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Favorite
// @Router /favorites/{userId} [get]
func (fc *FavoriteController) GetFavoritesByUser(c *gin.Context) {
	userID, ok := parseParamID(c, "userId")
	if !ok {
		return
	}

	favorites, err := fc.repo.FindByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Tags favorite
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "{success: true}"
// @Router /favorites [delete]
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	var req favoriteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := fc.repo.Remove(req.UserID, req.ArticleID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
