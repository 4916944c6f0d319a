package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// LocalStore writes files under a static directory served by the API itself.
type LocalStore struct {
	dir    string
	appURL string
	log    zerolog.Logger
}

func NewLocalStore(dir, appURL string, log zerolog.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, appURL: strings.TrimSuffix(appURL, "/"), log: log}, nil
}

func (s *LocalStore) Put(ctx context.Context, category, name, contentType string, size int64, r io.Reader) (string, error) {
	dir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir %s: %w", dir, err)
	}

	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", dst, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file %s: %w", dst, err)
	}

	return fmt.Sprintf("%s/static/%s/%s", s.appURL, category, name), nil
}

func (s *LocalStore) Delete(ctx context.Context, paths ...string) error {
	prefix := s.appURL + "/static/"
	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove file %s: %w", rel, err)
		}
	}
	return nil
}
