package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := Open(path)
	require.NoError(t, err)
	return store, path
}

func TestOpenSeedsMissingFile(t *testing.T) {
	store, path := tempStore(t)

	articles := store.ListArticles()
	assert.Len(t, articles, 3)
	assert.Len(t, store.ListUsers(), 3)
	assert.Empty(t, store.ListSubscribers())

	// The seed is written out immediately.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenSeedsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, store.ListArticles(), 3)
}

func TestDatasetRoundTrip(t *testing.T) {
	store, path := tempStore(t)

	_, err := store.CreateArticle(ArticleInput{Title: "Les volcans", Category: "Géologie"})
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, reopened.persist())

	reread, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(written), string(reread))

	// And the parsed content survives too.
	assert.Equal(t, store.ListArticles(), reopened.ListArticles())
}

func TestListArticlesSortedByCreationDesc(t *testing.T) {
	store, _ := tempStore(t)
	store.data.Articles = nil

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		offset := time.Duration(i) * time.Hour
		store.now = func() time.Time { return base.Add(offset) }
		_, err := store.CreateArticle(ArticleInput{Title: title})
		require.NoError(t, err)
	}

	articles := store.ListArticles()
	require.Len(t, articles, 3)
	assert.Equal(t, "third", articles[0].Title)
	assert.Equal(t, "second", articles[1].Title)
	assert.Equal(t, "first", articles[2].Title)
}

func TestCreateArticleDefaultsToDraft(t *testing.T) {
	store, _ := tempStore(t)

	article, err := store.CreateArticle(ArticleInput{Title: "Brouillon"})
	require.NoError(t, err)
	assert.Equal(t, "draft", article.Status)
	assert.NotEmpty(t, article.ID)
	assert.Equal(t, article.CreatedAt, article.UpdatedAt)
}

func TestUpdateArticle(t *testing.T) {
	store, _ := tempStore(t)

	updated, err := store.UpdateArticle("1", ArticleInput{
		Title:  "Titre révisé",
		Status: "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, "Titre révisé", updated.Title)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "2024-11-15T10:00:00Z", updated.CreatedAt)
	assert.NotEqual(t, updated.CreatedAt, updated.UpdatedAt)

	_, err = store.UpdateArticle("does-not-exist", ArticleInput{})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestDeleteArticleReturnsNotFound(t *testing.T) {
	store, _ := tempStore(t)

	require.NoError(t, store.DeleteArticle("1"))
	assert.Len(t, store.ListArticles(), 2)

	// This variant reports missing ids, unlike the database one.
	assert.ErrorIs(t, store.DeleteArticle("1"), ErrArticleNotFound)
}

func TestToggleUser(t *testing.T) {
	store, _ := tempStore(t)

	user, err := store.ToggleUser("1")
	require.NoError(t, err)
	assert.False(t, user.Active)

	user, err = store.ToggleUser("1")
	require.NoError(t, err)
	assert.True(t, user.Active)

	_, err = store.ToggleUser("99")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddSubscriber(t *testing.T) {
	store, path := tempStore(t)

	subscriber, err := store.AddSubscriber("parent@classe.example", "weekly")
	require.NoError(t, err)
	assert.True(t, subscriber.Active)
	assert.Equal(t, "weekly", subscriber.Frequency)

	// Persisted synchronously.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &doc))
	var subscribers []Subscriber
	require.NoError(t, json.Unmarshal(doc["subscribers"], &subscribers))
	assert.Len(t, subscribers, 1)
	assert.Equal(t, "parent@classe.example", subscribers[0].Email)
}

func TestExportAll(t *testing.T) {
	store, _ := tempStore(t)

	export := store.ExportAll()
	assert.Len(t, export.Articles, 3)
	assert.Len(t, export.Users, 3)
	assert.NotEmpty(t, export.ExportedAt)
}

func TestConcurrentCreatesDoNotDropWrites(t *testing.T) {
	store, _ := tempStore(t)
	store.data.Articles = nil
	require.NoError(t, store.persist())

	done := make(chan error)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := store.CreateArticle(ArticleInput{Title: "parallel"})
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	articles := store.ListArticles()
	assert.Len(t, articles, 10)

	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		assert.False(t, seen[a.ID], "id %s issued twice", a.ID)
		seen[a.ID] = true
	}
}

func TestCreatesInSameMillisecondGetDistinctIDs(t *testing.T) {
	store, _ := tempStore(t)
	store.data.Articles = nil
	require.NoError(t, store.persist())

	pinned := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return pinned }

	first, err := store.CreateArticle(ArticleInput{Title: "Premier"})
	require.NoError(t, err)
	second, err := store.CreateArticle(ArticleInput{Title: "Second"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// Each record stays reachable by its own id.
	require.NoError(t, store.DeleteArticle(first.ID))
	got, err := store.GetArticle(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}
