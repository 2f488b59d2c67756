package repository

import (
	"sciencepress/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	FindAll() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	PatchUser(id uint, data map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) CreateUser(user *models.User) error {
	return ur.db.Create(user).Error
}

func (ur *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := ur.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) PatchUser(id uint, data map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	if err := ur.db.Model(&user).Updates(data).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) DeleteUser(id uint) error {
	return ur.db.Delete(&models.User{}, id).Error
}
