// file: internals/helpers/storage/local_store.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore menyimpan blob di filesystem lokal di bawah BaseDir.
// URL publik mengikuti konvensi "/uploads/<key>".
type LocalStore struct {
	BaseDir string
	BaseURL string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir, BaseURL: "/uploads"}
}

func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("key tidak valid: %s", key)
	}
	return filepath.Join(s.BaseDir, clean), nil
}

func (s *LocalStore) Put(key string, data []byte, contentType string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("gagal menulis file: %w", err)
	}
	return nil
}

func (s *LocalStore) Get(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (s *LocalStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) URLFor(key string) string {
	return s.BaseURL + "/" + strings.TrimPrefix(key, "/")
}

// KeyFromURL kebalikan dari URLFor (untuk baca ulang file dari path yang
// tersimpan di DB).
func (s *LocalStore) KeyFromURL(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, s.BaseURL), "/")
}
