package tests

import (
	"bytes"
	"encoding/json"
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

func setupCommentRouter(repo *mocks.MockCommentRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewCommentController(repo)

	router.POST("/comments", controller.AddComment)
	router.GET("/comments/:articleId", controller.GetCommentsByArticle)
	router.DELETE("/comments/:id", controller.DeleteComment)
	return router
}

func TestAddComment(t *testing.T) {
	t.Run("returns comment joined with author", func(t *testing.T) {
		repo := new(mocks.MockCommentRepository)
		repo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
			return c.UserID == 1 && c.ArticleID == 2 && c.Content == "Très intéressant !"
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*models.Comment).ID = 10
		}).Return(nil)
		repo.On("FindByID", uint(10)).Return(&models.Comment{
			ID:        10,
			UserID:    1,
			ArticleID: 2,
			Content:   "Très intéressant !",
			User:      models.User{ID: 1, Name: "Élève 1 - 3eB"},
		}, nil)
		router := setupCommentRouter(repo)

		body := bytes.NewBufferString(`{"user_id":1,"article_id":2,"content":"Très intéressant !"}`)
		req := httptest.NewRequest(http.MethodPost, "/comments", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var comment models.Comment
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		assert.Equal(t, "Élève 1 - 3eB", comment.User.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		repo := new(mocks.MockCommentRepository)
		router := setupCommentRouter(repo)

		body := bytes.NewBufferString(`{"user_id":1,"article_id":2}`)
		req := httptest.NewRequest(http.MethodPost, "/comments", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestGetCommentsByArticle(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	repo.On("FindByArticle", uint(2)).Return([]models.Comment{
		{ID: 11, ArticleID: 2, Content: "Second", User: models.User{Name: "B"}},
		{ID: 10, ArticleID: 2, Content: "First", User: models.User{Name: "A"}},
	}, nil)
	router := setupCommentRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/comments/2", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var comments []models.Comment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Len(t, comments, 2)
	assert.Equal(t, "Second", comments[0].Content)
}

func TestDeleteComment(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	repo.On("Delete", uint(10)).Return(nil)
	router := setupCommentRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/comments/10", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}
