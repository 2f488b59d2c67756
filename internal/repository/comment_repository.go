package repository

import (
	"sciencepress/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	FindByArticle(articleID uint) ([]models.Comment, error)
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (cr *commentRepository) Create(comment *models.Comment) error {
	return cr.db.Create(comment).Error
}

// FindByID loads one comment with its author, so a fresh insert can be
// returned to the client already joined.
func (cr *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := cr.db.Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (cr *commentRepository) FindByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := cr.db.
		Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (cr *commentRepository) Delete(id uint) error {
	return cr.db.Delete(&models.Comment{}, id).Error
}
