package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage is the external upload collaborator. The quote pipeline only
// ever sees the opaque storage paths it hands back.
type ObjectStorage interface {
	Save(name string, r io.Reader) (string, error)
	Finalize(path string) (string, error)
	Open(path string) (io.ReadCloser, error)
}

// localObjectStorage keeps uploads on the local disk; staged uploads move to
// their final location on finalize.
type localObjectStorage struct {
	dir string
}

func NewLocalObjectStorage(dir string) (ObjectStorage, error) {
	for _, sub := range []string{"staging", "uploads"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create object storage dir: %w", err)
		}
	}
	return &localObjectStorage{dir: dir}, nil
}

func (s *localObjectStorage) Save(name string, r io.Reader) (string, error) {
	cleaned := sanitizeObjectName(name)
	if cleaned == "" {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	rel := filepath.Join("staging", uuid.NewString()+"-"+cleaned)

	f, err := os.Create(filepath.Join(s.dir, rel))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return rel, nil
}

func (s *localObjectStorage) Finalize(path string) (string, error) {
	rel, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(rel, "staging"+string(filepath.Separator)) && !strings.HasPrefix(rel, "staging/") {
		// Already finalized; finalize is idempotent.
		return rel, nil
	}

	final := filepath.Join("uploads", filepath.Base(rel))
	if err := os.Rename(filepath.Join(s.dir, rel), filepath.Join(s.dir, final)); err != nil {
		return "", err
	}
	return final, nil
}

func (s *localObjectStorage) Open(path string) (io.ReadCloser, error) {
	rel, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.dir, rel))
}

// resolve rejects any path that would escape the storage root.
func (s *localObjectStorage) resolve(path string) (string, error) {
	rel := filepath.Clean(strings.TrimPrefix(path, "/"))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return rel, nil
}

func sanitizeObjectName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
}
