package models

import "time"

// Favorite marks an article as a favorite of a user. The composite
// unique index keeps the relation to at most one row per pair.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_article" json:"user_id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_article" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`

	Article Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}
