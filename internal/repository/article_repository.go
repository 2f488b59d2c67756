package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sciencepress/internal/models"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix     = "article:"
	allArticlesCacheKey       = "articles:all"
	publishedArticlesCacheKey = "articles:published"
	cacheExpiration           = 30 * time.Minute
)

type ArticleRepository interface {
	Create(article *models.Article) error
	FindAll() ([]models.Article, error)
	FindPublished() ([]models.Article, error)
	FindByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	IncrementViews(id uint) (*models.Article, error)
	InvalidateCache(id uint) error
	InvalidateListCaches() error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		log.Printf("Error creating article: %v", err)
		return err
	}
	_ = r.InvalidateListCaches()
	return nil
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	return r.listArticles(allArticlesCacheKey, r.db)
}

func (r *articleRepository) FindPublished() ([]models.Article, error) {
	return r.listArticles(publishedArticlesCacheKey, r.db.Where("status = ?", models.StatusPublished))
}

func (r *articleRepository) listArticles(cacheKey string, tx *gorm.DB) ([]models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				return articles, nil
			}
		}
	}

	var articles []models.Article
	if err := tx.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		articlesJSON, err := json.Marshal(articles)
		if err == nil {
			if err := r.redis.Set(r.ctx, cacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article list %q: %v", cacheKey, err)
			}
		}
	}

	return articles, nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	if r.redis == nil {
		var article models.Article
		err := r.db.First(&article, id).Error
		if err != nil {
			return nil, err
		}
		return &article, nil
	}

	cacheKey := getCacheKey(id)
	cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
	if err == nil {
		var article models.Article
		if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
			return &article, nil
		}
		log.Printf("Failed to unmarshal cached article: %v", err)
	}

	// Cache miss or error, query database
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}

	articleJSON, err := json.Marshal(article)
	if err == nil {
		if err := r.redis.Set(r.ctx, cacheKey, articleJSON, cacheExpiration).Err(); err != nil {
			log.Printf("Failed to cache article ID %d: %v", id, err)
		}
	}

	return &article, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	// The view counter is written only by IncrementViews; leaving it out
	// of the update keeps increments landing between the caller's read
	// and this write from being rolled back.
	if err := r.db.Omit("views").Save(article).Error; err != nil {
		return err
	}
	if err := r.db.First(article, article.ID).Error; err != nil {
		return err
	}

	if r.redis == nil {
		return nil
	}

	articleJSON, err := json.Marshal(article)
	if err == nil {
		if err := r.redis.Set(r.ctx, getCacheKey(article.ID), articleJSON, cacheExpiration).Err(); err != nil {
			log.Printf("Failed to update article cache: %v", err)
		}
	}
	_ = r.InvalidateListCaches()

	return nil
}

func (r *articleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	if r.redis == nil {
		return nil
	}
	_ = r.InvalidateCache(id)
	_ = r.InvalidateListCaches()
	return nil
}

// IncrementViews bumps the view counter by one in a single UPDATE so
// concurrent increments never overwrite each other.
func (r *articleRepository) IncrementViews(id uint) (*models.Article, error) {
	result := r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		articleJSON, err := json.Marshal(article)
		if err == nil {
			if err := r.redis.Set(r.ctx, getCacheKey(id), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to update article cache: %v", err)
			}
		}
		_ = r.InvalidateListCaches()
	}

	return &article, nil
}

func (r *articleRepository) InvalidateCache(id uint) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, getCacheKey(id)).Err()
}

func (r *articleRepository) InvalidateListCaches() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allArticlesCacheKey, publishedArticlesCacheKey).Err()
}
