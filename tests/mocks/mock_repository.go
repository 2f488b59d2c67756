package mocks

import (
	"mime/multipart"
	"sciencepress/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindPublished() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViews(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) InvalidateCache(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) InvalidateListCaches() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) PatchUser(id uint, data map[string]interface{}) (*models.User, error) {
	args := m.Called(id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(image *models.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageRepository) FindAll() ([]models.Image, error) {
	args := m.Called()
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockImageRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockFavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(favorite *models.Favorite) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) FindByUser(userID uint) ([]models.Favorite, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(userID, articleID uint) error {
	args := m.Called(userID, articleID)
	return args.Error(0)
}

// Shared MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByArticle(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ScoresByArticle(articleID uint) ([]int, error) {
	args := m.Called(articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockBlobStore stands in for the upload storage.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(file *multipart.FileHeader) (string, string, error) {
	args := m.Called(file)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockBlobStore) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
