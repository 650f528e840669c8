package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix local images are served under.
const PublicPrefix = "/uploads"

// LocalStore writes images to a directory served statically by the router.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

func (s *LocalStore) Delete(_ context.Context, publicPath string) error {
	name := filepath.Base(publicPath)
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
