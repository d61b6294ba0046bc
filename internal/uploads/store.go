// Package uploads stores uploaded bill images on disk. Files are written
// before extraction runs and are kept even when the user abandons the review
// step; stale files are never reclaimed.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/uploads"

// allowedExtensions maps accepted image extensions to their MIME types.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Store writes uploaded images into a single directory with generated names.
type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// MIMEType returns the MIME type for the given filename and whether its
// extension is an accepted image type.
func MIMEType(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	mime, ok := allowedExtensions[ext]
	return mime, ok
}

// Save writes data under a generated unique name, keeping the original
// extension, and returns the public image path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return URLPrefix + "/" + name, nil
}
