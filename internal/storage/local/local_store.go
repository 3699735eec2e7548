// Package local stores documents in a flat directory, one file per ID.
// It is the dependency-free default provider for development and
// single-node deployments.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"immodok/internal/domain"
)

// Store implements port.DocumentStore on the local filesystem.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(fileID string) (string, error) {
	// File IDs are opaque but caller-supplied in tests; refuse anything
	// that could escape the storage directory.
	if fileID == "" || fileID != filepath.Base(fileID) || strings.HasPrefix(fileID, ".") {
		return "", domain.ErrFileNotFound
	}
	return filepath.Join(s.dir, fileID+".pdf"), nil
}

func (s *Store) Save(_ context.Context, fileID string, data []byte) error {
	p, err := s.path(fileID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating storage dir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func (s *Store) Load(_ context.Context, fileID string) ([]byte, error) {
	p, err := s.path(fileID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return data, nil
}

func (s *Store) Delete(_ context.Context, fileID string) error {
	p, err := s.path(fileID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
