package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore persists uploaded binary files and yields a retrievable URL.
type BlobStore interface {
	Save(file *multipart.FileHeader) (name string, url string, err error)
	Delete(name string) error
}

// LocalStorage keeps uploads on the local filesystem under a single
// directory, served back statically from /uploads.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

// Save writes the upload under a generated name, keeping the original
// extension so the static file server picks the right content type.
func (s *LocalStorage) Save(file *multipart.FileHeader) (string, string, error) {
	name := uuid.New().String() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", "", fmt.Errorf("failed to write blob: %w", err)
	}

	return name, s.baseURL + "/uploads/" + name, nil
}

func (s *LocalStorage) Delete(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}
