package controllers

import (
	"net/http"
	"sciencepress/internal/models"
	"sciencepress/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	repo repository.CommentRepository
}

func NewCommentController(repo repository.CommentRepository) *CommentController {
	return &CommentController{repo: repo}
}

type createCommentRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	ArticleID uint   `json:"article_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary Comment on an article
// @Description Insert the comment and return it joined with its author
// @Tags comment
// @Accept json
// @Produce json
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /comments [post]
func (cc *CommentController) AddComment(c *gin.Context) {
	var req createCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		UserID:    req.UserID,
		ArticleID: req.ArticleID,
		Content:   req.Content,
	}

	if err := cc.repo.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Reload with the author so the client gets the username right away.
	enriched, err := cc.repo.FindByID(comment.ID)
	if err != nil {
		c.JSON(http.StatusCreated, comment)
		return
	}

	c.JSON(http.StatusCreated, enriched)
}

// GetCommentsByArticle godoc
// @Summary List comments for an article
// @Description Comments joined with author name and avatar, newest first
// @Tags comment
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {array} models.Comment
// @Router /comments/{articleId} [get]
func (cc *CommentController) GetCommentsByArticle(c *gin.Context) {
	articleID, ok := parseParamID(c, "articleId")
	if !ok {
		return
	}

	comments, err := cc.repo.FindByArticle(articleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "{success: true}"
// @Router /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
