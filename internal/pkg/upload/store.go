package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves proof-of-payment attachments on disk and hands back opaque
// reference strings. The core never interprets file contents.
type Store struct {
	dir       string
	publicURL string
}

// NewStore creates the uploads directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir, publicURL: "/uploads"}, nil
}

// Dir returns the backing directory, used to mount static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the attachment under a uuid-prefixed name and returns its
// public reference, e.g. /uploads/8f41...-receipt.png.
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	name := uuid.NewString() + "-" + sanitize(filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create attachment: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return s.publicURL + "/" + name, nil
}

// Open resolves a public reference produced by Save back to the stored
// file. References outside the store are rejected.
func (s *Store) Open(ref string) (*os.File, error) {
	name := strings.TrimPrefix(ref, s.publicURL+"/")
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid attachment reference %q", ref)
	}
	return os.Open(filepath.Join(s.dir, name))
}

func sanitize(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "attachment"
	}
	return base
}
