package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"sciencepress/internal/controllers"
	"sciencepress/internal/filestore"
	"sciencepress/internal/utils"
	"sciencepress/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDatasetRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := filestore.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	router := gin.New()
	routes.RegisterDatasetRoutes(router, controllers.NewDatasetController(store, utils.MailConfig{}))
	return router
}

func TestAPIHealth(t *testing.T) {
	router := setupDatasetRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["timestamp"])
}

func TestAPIArticleLifecycle(t *testing.T) {
	router := setupDatasetRouter(t)

	// Seeded articles come back newest first.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var articles []filestore.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &articles))
	require.Len(t, articles, 3)
	assert.Equal(t, "3", articles[0].ID)

	// Create, then delete; a second delete reports 404 in this variant.
	body := bytes.NewBufferString(`{"title":"Les volcans","category":"Géologie"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/articles", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created filestore.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "draft", created.Status)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/articles/"+created.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/articles/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIUserToggle(t *testing.T) {
	router := setupDatasetRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/users/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var user filestore.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.False(t, user.Active)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/users/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPISubscribers(t *testing.T) {
	router := setupDatasetRouter(t)

	body := bytes.NewBufferString(`{"email":"parent@classe.example","frequency":"weekly"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/subscribers", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Email is validated before anything is stored.
	body = bytes.NewBufferString(`{"email":"not-an-email"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/subscribers", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/subscribers", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var subscribers []filestore.Subscriber
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subscribers))
	assert.Len(t, subscribers, 1)
}

func TestAPIExport(t *testing.T) {
	router := setupDatasetRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var export filestore.Export
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Len(t, export.Articles, 3)
	assert.Len(t, export.Users, 3)
	assert.NotEmpty(t, export.ExportedAt)
}
