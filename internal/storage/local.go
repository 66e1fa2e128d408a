package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage lays blobs out under root as <question-id>/<filename>. The
// locator is that relative slash-separated path.
type LocalStorage struct {
	root   string
	logger *slog.Logger
}

func NewLocalStorage(root string, logger *slog.Logger) (*LocalStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalStorage{root: root, logger: logger}, nil
}

func (s *LocalStorage) Save(_ context.Context, ownerID uuid.UUID, filename string, data []byte) (string, error) {
	name := path.Base(filepath.ToSlash(filename))
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("invalid image filename %q", filename)
	}

	locator := path.Join(ownerID.String(), name)
	full := filepath.Join(s.root, filepath.FromSlash(locator))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	s.logger.Debug("storage.saved", "locator", locator, "bytes", len(data))
	return locator, nil
}

func (s *LocalStorage) Delete(_ context.Context, locator string) (bool, error) {
	full, err := s.resolve(locator)
	if err != nil {
		return false, err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete image: %w", err)
	}
	return true, nil
}

func (s *LocalStorage) List(_ context.Context, ownerID uuid.UUID) ([]string, error) {
	dir := filepath.Join(s.root, ownerID.String())
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var locators []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		locators = append(locators, path.Join(ownerID.String(), entry.Name()))
	}
	return locators, nil
}

// resolve rejects locators that escape the storage root.
func (s *LocalStorage) resolve(locator string) (string, error) {
	clean := path.Clean(filepath.ToSlash(locator))
	if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return "", fmt.Errorf("invalid locator %q", locator)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
