package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "floorquote/internal/errors"
)

// MaxImageSize is the upload size limit in bytes.
const MaxImageSize = 10 << 20 // 10MB

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/uploads/"

// FileStore abstracts image file storage so services can be tested without a
// filesystem.
type FileStore interface {
	Save(file *multipart.FileHeader) (publicPath string, err error)
	Remove(publicPath string) error
}

// Store writes uploaded images into a flat directory with collision-resistant
// generated names, so concurrent uploads need no locking.
type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save validates size and mimetype, then stores the file as
// {epoch-ms}-{random-int}{original-extension} and returns its public path.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxImageSize {
		return "", apperrors.ErrImageTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", apperrors.ErrNotAnImage
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return PublicPrefix + name, nil
}

// Remove deletes a previously stored file by its public path. Paths outside
// the uploads area are ignored.
func (s *Store) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(publicPath, PublicPrefix))
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
