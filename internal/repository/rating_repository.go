package repository

import (
	"sciencepress/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	ScoresByArticle(articleID uint) ([]int, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating, or overwrites the score when the
// (user_id, article_id) pair already has one. Last write wins.
func (rr *ratingRepository) Upsert(rating *models.Rating) error {
	return rr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

func (rr *ratingRepository) ScoresByArticle(articleID uint) ([]int, error) {
	var scores []int
	err := rr.db.Model(&models.Rating{}).
		Where("article_id = ?", articleID).
		Pluck("score", &scores).Error
	return scores, err
}
