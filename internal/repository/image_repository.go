package repository

import (
	"sciencepress/internal/models"

	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(image *models.Image) error
	FindAll() ([]models.Image, error)
	Delete(id uint) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (ir *imageRepository) Create(image *models.Image) error {
	return ir.db.Create(image).Error
}

func (ir *imageRepository) FindAll() ([]models.Image, error) {
	var images []models.Image
	err := ir.db.Order("created_at DESC").Find(&images).Error
	return images, err
}

// Delete removes the metadata row only. The blob itself stays behind,
// matching the original server behavior.
func (ir *imageRepository) Delete(id uint) error {
	return ir.db.Delete(&models.Image{}, id).Error
}
