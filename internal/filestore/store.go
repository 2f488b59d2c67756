package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sciencepress/internal/models"
	"sort"
	"strconv"
	"sync"
	"time"
)

var (
	ErrArticleNotFound = errors.New("Article not found")
	ErrUserNotFound    = errors.New("User not found")
)

// Article is the file-backed record shape. Field names follow the JSON
// document layout the original data files use, so existing files load
// unchanged.
type Article struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Summary   string                `json:"summary"`
	Content   []models.ContentBlock `json:"content"`
	Category  string                `json:"category"`
	Tags      []string              `json:"tags"`
	Sources   []models.Source       `json:"sources"`
	ImageURL  *string               `json:"imageUrl"`
	Status    string                `json:"status"`
	CreatedAt string                `json:"createdAt"`
	UpdatedAt string                `json:"updatedAt"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

type Subscriber struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Frequency    string `json:"frequency"`
	Active       bool   `json:"active"`
	SubscribedAt string `json:"subscribedAt"`
}

type dataset struct {
	Articles    []Article    `json:"articles"`
	Users       []User       `json:"users"`
	Subscribers []Subscriber `json:"subscribers"`
}

// Export is the full-dataset dump served by the export endpoint.
type Export struct {
	Articles    []Article    `json:"articles"`
	Users       []User       `json:"users"`
	Subscribers []Subscriber `json:"subscribers"`
	ExportedAt  string       `json:"exportedAt"`
}

// ArticleInput carries the caller-supplied article fields for create
// and update.
type ArticleInput struct {
	Title    string                `json:"title"`
	Summary  string                `json:"summary"`
	Content  []models.ContentBlock `json:"content"`
	Category string                `json:"category"`
	Tags     []string              `json:"tags"`
	Sources  []models.Source       `json:"sources"`
	ImageURL *string               `json:"imageUrl"`
	Status   string                `json:"status"`
}

// Store keeps the whole dataset as one JSON document on disk. Every
// operation runs under a single mutex, and every mutation rewrites the
// file through a temp-file rename so a crash cannot tear it.
type Store struct {
	mu     sync.Mutex
	path   string
	data   dataset
	now    func() time.Time
	lastID int64
}

// Open reads the dataset from path. A missing or unparsable file is
// replaced with the seed dataset.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		log.Printf("Data file %s not found, seeding default dataset", path)
		s.data = defaultDataset()
		if err := s.persist(); err != nil {
			return nil, err
		}
		s.initLastID()
		return s, nil
	}

	if err := json.Unmarshal(content, &s.data); err != nil {
		log.Printf("Data file %s is corrupt (%v), seeding default dataset", path, err)
		s.data = defaultDataset()
		if err := s.persist(); err != nil {
			return nil, err
		}
	}

	s.initLastID()
	return s, nil
}

// persist writes the document to a temp file in the same directory and
// renames it into place. Callers must hold the mutex.
func (s *Store) persist() error {
	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// initLastID seeds the id watermark from the loaded records so ids
// stay unique across restarts.
func (s *Store) initLastID() {
	bump := func(id string) {
		if v, err := strconv.ParseInt(id, 10, 64); err == nil && v > s.lastID {
			s.lastID = v
		}
	}
	for _, a := range s.data.Articles {
		bump(a.ID)
	}
	for _, u := range s.data.Users {
		bump(u.ID)
	}
	for _, sub := range s.data.Subscribers {
		bump(sub.ID)
	}
}

// newID issues a millisecond-timestamp id. Two creates landing in the
// same millisecond would otherwise collide, so the id is bumped past
// the last one issued. Callers hold the mutex.
func (s *Store) newID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Store) ListArticles() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]Article, len(s.data.Articles))
	copy(articles, s.data.Articles)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt > articles[j].CreatedAt
	})
	return articles
}

func (s *Store) GetArticle(id string) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.data.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, ErrArticleNotFound
}

func (s *Store) CreateArticle(in ArticleInput) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}

	now := s.timestamp()
	article := Article{
		ID:        s.newID(),
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      in.Tags,
		Sources:   in.Sources,
		ImageURL:  in.ImageURL,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.data.Articles = append(s.data.Articles, article)
	if err := s.persist(); err != nil {
		s.data.Articles = s.data.Articles[:len(s.data.Articles)-1]
		return Article{}, err
	}
	return article, nil
}

func (s *Store) UpdateArticle(id string, in ArticleInput) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.data.Articles {
		if a.ID != id {
			continue
		}

		a.Title = in.Title
		a.Summary = in.Summary
		a.Content = in.Content
		a.Category = in.Category
		a.Tags = in.Tags
		a.Sources = in.Sources
		a.ImageURL = in.ImageURL
		if in.Status != "" {
			a.Status = in.Status
		}
		a.UpdatedAt = s.timestamp()

		previous := s.data.Articles[i]
		s.data.Articles[i] = a
		if err := s.persist(); err != nil {
			s.data.Articles[i] = previous
			return Article{}, err
		}
		return a, nil
	}
	return Article{}, ErrArticleNotFound
}

func (s *Store) DeleteArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.data.Articles {
		if a.ID != id {
			continue
		}
		s.data.Articles = append(s.data.Articles[:i], s.data.Articles[i+1:]...)
		return s.persist()
	}
	return ErrArticleNotFound
}

func (s *Store) ListUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]User, len(s.data.Users))
	copy(users, s.data.Users)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt > users[j].CreatedAt
	})
	return users
}

// ToggleUser flips the active flag, which is all the original user
// update ever did in this variant.
func (s *Store) ToggleUser(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Users {
		if s.data.Users[i].ID != id {
			continue
		}
		s.data.Users[i].Active = !s.data.Users[i].Active
		if err := s.persist(); err != nil {
			s.data.Users[i].Active = !s.data.Users[i].Active
			return User{}, err
		}
		return s.data.Users[i], nil
	}
	return User{}, ErrUserNotFound
}

func (s *Store) ListSubscribers() []Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers := make([]Subscriber, len(s.data.Subscribers))
	copy(subscribers, s.data.Subscribers)
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt > subscribers[j].SubscribedAt
	})
	return subscribers
}

func (s *Store) AddSubscriber(email, frequency string) (Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber := Subscriber{
		ID:           s.newID(),
		Email:        email,
		Frequency:    frequency,
		Active:       true,
		SubscribedAt: s.timestamp(),
	}

	s.data.Subscribers = append(s.data.Subscribers, subscriber)
	if err := s.persist(); err != nil {
		s.data.Subscribers = s.data.Subscribers[:len(s.data.Subscribers)-1]
		return Subscriber{}, err
	}
	return subscriber, nil
}

func (s *Store) ExportAll() Export {
	s.mu.Lock()
	defer s.mu.Unlock()

	export := Export{
		Articles:    make([]Article, len(s.data.Articles)),
		Users:       make([]User, len(s.data.Users)),
		Subscribers: make([]Subscriber, len(s.data.Subscribers)),
		ExportedAt:  s.timestamp(),
	}
	copy(export.Articles, s.data.Articles)
	copy(export.Users, s.data.Users)
	copy(export.Subscribers, s.data.Subscribers)
	return export
}
