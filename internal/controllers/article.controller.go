package controllers

import (
	"errors"
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleController struct {
	repo repository.ArticleRepository
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{repo: repo}
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Create an article with the provided data
// @Tags article
// @Accept json
// @Produce json
// @Success 201 {object} models.Article "Created article"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var article models.Article

	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if article.Status == "" {
		article.Status = models.StatusDraft
	}

	if err := ac.repo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetPublishedArticles godoc
// @Summary List published articles
// @Description Retrieve published articles, newest first
// @Tags article
// @Produce json
// @Success 200 {array} models.Article
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles [get]
func (ac *ArticleController) GetPublishedArticles(c *gin.Context) {
	articles, err := ac.repo.FindPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetAllArticles godoc
// @Summary List all articles
// @Description Retrieve every article including drafts, newest first
// @Tags article
// @Produce json
// @Success 200 {array} models.Article
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles/all [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// UpdateArticle godoc
// @Summary Update an article
// @Tags article
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	var article models.Article

	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	// The id and creation time are server-owned; the view counter is
	// left to the increment path and never carried through an update.
	article.ID = existing.ID
	article.CreatedAt = existing.CreatedAt

	if err := ac.repo.Update(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

// IncrementView godoc
// @Summary Increment the view counter
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/view [put]
func (ac *ArticleController) IncrementView(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.IncrementViews(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Delete is idempotent; deleting an absent id still succeeds
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "{success: true}"
// @Router /articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseID reads the :id path parameter and writes the 400 response
// itself when the value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	return parseParamID(c, "id")
}

func parseParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID must be a valid positive integer"})
		return 0, false
	}
	return uint(id), true
}
