package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaStore persists uploaded files and hands back URLs clients can fetch.
type MediaStore interface {
	// Save writes the uploaded file under the given subdirectory and returns
	// its URL path, e.g. "/media/signalements/<name>".
	Save(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error)
	// AbsoluteURL turns a stored URL path into an absolute URL.
	AbsoluteURL(urlPath string) string
}

// DiskMediaStore stores media on the local filesystem under a root directory
// served by the HTTP layer at /media.
type DiskMediaStore struct {
	root          string
	publicBaseURL string
}

func NewDiskMediaStore(root, publicBaseURL string) *DiskMediaStore {
	return &DiskMediaStore{
		root:          root,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save stores the upload under a random name, keeping the original extension.
func (s *DiskMediaStore) Save(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return path.Join("/media", subdir, name), nil
}

// AbsoluteURL prefixes the stored path with the public base URL.
func (s *DiskMediaStore) AbsoluteURL(urlPath string) string {
	return s.publicBaseURL + urlPath
}
