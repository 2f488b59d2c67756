package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sciencepress/internal/controllers"
	"sciencepress/internal/models"
	"sciencepress/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupImageRouter(repo *mocks.MockImageRepository, blobs *mocks.MockBlobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewImageController(repo, blobs)

	router.GET("/images", controller.GetAllImages)
	router.POST("/images", controller.UploadImage)
	router.DELETE("/images/:id", controller.DeleteImage)
	return router
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	t.Run("saves blob and inserts record", func(t *testing.T) {
		repo := new(mocks.MockImageRepository)
		blobs := new(mocks.MockBlobStore)
		blobs.On("Save", mock.Anything).Return("abc.png", "http://localhost:8080/uploads/abc.png", nil)
		repo.On("Create", mock.MatchedBy(func(img *models.Image) bool {
			return img.Filename == "photo.png" && img.URL == "http://localhost:8080/uploads/abc.png"
		})).Return(nil)
		router := setupImageRouter(repo, blobs)

		body, contentType := multipartUpload(t, "image", "photo.png", []byte("fake-png"))
		req := httptest.NewRequest(http.MethodPost, "/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
		blobs.AssertExpectations(t)
	})

	t.Run("rejects missing file part", func(t *testing.T) {
		repo := new(mocks.MockImageRepository)
		blobs := new(mocks.MockBlobStore)
		router := setupImageRouter(repo, blobs)

		req := httptest.NewRequest(http.MethodPost, "/images", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		blobs.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("cleans up orphaned blob when insert fails", func(t *testing.T) {
		repo := new(mocks.MockImageRepository)
		blobs := new(mocks.MockBlobStore)
		blobs.On("Save", mock.Anything).Return("abc.png", "http://localhost:8080/uploads/abc.png", nil)
		repo.On("Create", mock.Anything).Return(errors.New("insert failed"))
		blobs.On("Delete", "abc.png").Return(nil)
		router := setupImageRouter(repo, blobs)

		body, contentType := multipartUpload(t, "image", "photo.png", []byte("fake-png"))
		req := httptest.NewRequest(http.MethodPost, "/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		blobs.AssertCalled(t, "Delete", "abc.png")
	})
}

func TestGetAllImages(t *testing.T) {
	repo := new(mocks.MockImageRepository)
	blobs := new(mocks.MockBlobStore)
	repo.On("FindAll").Return([]models.Image{
		{ID: 2, Filename: "b.png", URL: "/uploads/b.png"},
		{ID: 1, Filename: "a.png", URL: "/uploads/a.png"},
	}, nil)
	router := setupImageRouter(repo, blobs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var images []models.Image
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	assert.Len(t, images, 2)
}

func TestDeleteImage(t *testing.T) {
	repo := new(mocks.MockImageRepository)
	blobs := new(mocks.MockBlobStore)
	repo.On("Delete", uint(1)).Return(nil)
	router := setupImageRouter(repo, blobs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/images/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}
