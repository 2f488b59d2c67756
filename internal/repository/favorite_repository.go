package repository

import (
	"sciencepress/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(favorite *models.Favorite) error
	FindByUser(userID uint) ([]models.Favorite, error)
	Remove(userID, articleID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the relation. Re-adding an existing pair returns the
// existing row instead of a duplicate.
func (fr *favoriteRepository) Add(favorite *models.Favorite) error {
	return fr.db.
		Where("user_id = ? AND article_id = ?", favorite.UserID, favorite.ArticleID).
		FirstOrCreate(favorite).Error
}

func (fr *favoriteRepository) FindByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := fr.db.
		Preload("Article").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (fr *favoriteRepository) Remove(userID, articleID uint) error {
	return fr.db.
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Favorite{}).Error
}
