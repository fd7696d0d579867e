package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"sellersuite/internal/config"
	"sellersuite/internal/domain"
	"sellersuite/internal/port"
)

type localStore struct {
	dirs map[port.Area]string
}

// NewLocalStore creates a disk-backed FileStore rooted at the configured upload and output
// directories. Both directories are created if missing.
func NewLocalStore(cfg *config.StorageConfig) (port.FileStore, error) {
	s := &localStore{dirs: map[port.Area]string{
		port.AreaUploads: cfg.UploadDir,
		port.AreaOutputs: cfg.OutputDir,
	}}
	for area, dir := range s.dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", area, err)
		}
	}
	log.Printf("storage.local: uploads in %s, outputs in %s", cfg.UploadDir, cfg.OutputDir)
	return s, nil
}

func (s *localStore) path(area port.Area, name string) (string, error) {
	dir, ok := s.dirs[area]
	if !ok {
		return "", fmt.Errorf("unknown storage area %q", area)
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFilename, name)
	}
	return filepath.Join(dir, name), nil
}

func (s *localStore) Save(_ context.Context, input port.SaveInput) error {
	p, err := s.path(input.Area, input.Name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return fmt.Errorf("local save: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, input.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("local save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("local save: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("local save: %w", err)
	}
	return nil
}

func (s *localStore) Open(_ context.Context, area port.Area, name string) (io.ReadCloser, error) {
	p, err := s.path(area, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("local open: %w", err)
	}
	return f, nil
}

func (s *localStore) Ping(_ context.Context) error {
	for area, dir := range s.dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%s directory: %w", area, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s path %s is not a directory", area, dir)
		}
	}
	return nil
}
