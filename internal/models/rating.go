package models

import "time"

// Rating holds one user's score for one article. Re-rating overwrites
// the existing row through the composite unique index.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_article" json:"user_id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_ratings_user_article" json:"article_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
