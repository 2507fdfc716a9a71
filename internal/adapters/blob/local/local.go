package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"openadopt/internal/ports/blob"
)

var (
	ErrOutsideBase = errors.New("url outside storage base")
)

// Storage implementa blob.Storage sobre el filesystem local.
// Las URLs se construyen como baseURL + "/" + path; el file server que
// expone baseURL lo monta el router.
type Storage struct {
	basePath string
	baseURL  string
}

func New(basePath, baseURL string) (*Storage, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Storage{
		basePath: basePath,
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}, nil
}

func (s *Storage) Upload(ctx context.Context, r io.Reader, size int64, path string) (string, error) {
	rel, err := s.cleanRel(path)
	if err != nil {
		return "", err
	}

	full := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create dir for %s: %w", rel, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", rel, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", rel, err)
	}

	return s.baseURL + "/" + rel, nil
}

func (s *Storage) Delete(ctx context.Context, url string) error {
	rel, err := s.relFromURL(url)
	if err != nil {
		return err
	}

	full := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return blob.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", rel, err)
	}
	return nil
}

func (s *Storage) DeleteNamespace(ctx context.Context, prefix string) error {
	rel, err := s.cleanRel(prefix)
	if err != nil {
		return err
	}

	full := filepath.Join(s.basePath, filepath.FromSlash(rel))
	// RemoveAll ya es no-op sobre paths inexistentes.
	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("delete namespace %s: %w", rel, err)
	}
	return nil
}

func (s *Storage) Exists(ctx context.Context, url string) (bool, error) {
	rel, err := s.relFromURL(url)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(filepath.Join(s.basePath, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// relFromURL vuelve de la URL pública al path relativo bajo basePath.
func (s *Storage) relFromURL(url string) (string, error) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", ErrOutsideBase
	}
	return s.cleanRel(strings.TrimPrefix(url, s.baseURL+"/"))
}

// cleanRel normaliza y rechaza cualquier path que escape del base
// (".." y amigos).
func (s *Storage) cleanRel(p string) (string, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "", ErrOutsideBase
	}
	clean := filepath.ToSlash(filepath.Clean(p))
	if clean == ".." || strings.HasPrefix(clean, "../") || filepath.IsAbs(clean) {
		return "", ErrOutsideBase
	}
	return clean, nil
}
