package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

const imageDir = "profile_images"

// Store persists uploaded profile images and returns a media-relative
// path suitable for building a public URL.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskStore writes images under <root>/profile_images with fresh uuid
// names, keeping only the original extension.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, imageDir), 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	name := uuid.New().String() + ext
	relPath := path.Join(imageDir, name)

	f, err := os.Create(filepath.Join(s.root, imageDir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}

	return relPath, nil
}
