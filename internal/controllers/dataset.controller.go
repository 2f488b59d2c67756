package controllers

import (
	"errors"
	"log"
	"net/http"
	"sciencepress/internal/filestore"
	"sciencepress/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// DatasetController serves the file-backed variant: the whole dataset
// lives in one JSON document managed by the filestore.
type DatasetController struct {
	store *filestore.Store
	mail  utils.MailConfig
}

func NewDatasetController(store *filestore.Store, mail utils.MailConfig) *DatasetController {
	return &DatasetController{store: store, mail: mail}
}

func (dc *DatasetController) ListArticles(c *gin.Context) {
	c.JSON(http.StatusOK, dc.store.ListArticles())
}

func (dc *DatasetController) GetArticle(c *gin.Context) {
	article, err := dc.store.GetArticle(c.Param("id"))
	if err != nil {
		dc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (dc *DatasetController) CreateArticle(c *gin.Context) {
	var in filestore.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := dc.store.CreateArticle(in)
	if err != nil {
		dc.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (dc *DatasetController) UpdateArticle(c *gin.Context) {
	var in filestore.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := dc.store.UpdateArticle(c.Param("id"), in)
	if err != nil {
		dc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (dc *DatasetController) DeleteArticle(c *gin.Context) {
	if err := dc.store.DeleteArticle(c.Param("id")); err != nil {
		dc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (dc *DatasetController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, dc.store.ListUsers())
}

// ToggleUser flips the active flag of a user, which is what the user
// update endpoint does in this variant.
func (dc *DatasetController) ToggleUser(c *gin.Context) {
	user, err := dc.store.ToggleUser(c.Param("id"))
	if err != nil {
		dc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (dc *DatasetController) ListSubscribers(c *gin.Context) {
	c.JSON(http.StatusOK, dc.store.ListSubscribers())
}

type subscribeRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Frequency string `json:"frequency"`
}

func (dc *DatasetController) AddSubscriber(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscriber, err := dc.store.AddSubscriber(req.Email, req.Frequency)
	if err != nil {
		dc.renderError(c, err)
		return
	}

	if dc.mail.Configured() {
		go func(email string) {
			if err := utils.SendEmail(dc.mail, email,
				"Bienvenue à la newsletter",
				"Votre abonnement à la newsletter est confirmé.",
			); err != nil {
				log.Printf("Failed to send subscription confirmation to %s: %v", email, err)
			}
		}(subscriber.Email)
	}

	c.JSON(http.StatusCreated, subscriber)
}

func (dc *DatasetController) ExportData(c *gin.Context) {
	c.JSON(http.StatusOK, dc.store.ExportAll())
}

func (dc *DatasetController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (dc *DatasetController) renderError(c *gin.Context, err error) {
	if errors.Is(err, filestore.ErrArticleNotFound) || errors.Is(err, filestore.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
