// Package file keeps the link store in a single JSON document on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"shortlinks/internal/domain"
	"shortlinks/internal/store"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. A missing file is an empty store.
func (s *Store) Load(_ context.Context) (domain.Links, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Links{}, nil
	}
	if err != nil {
		return domain.Links{}, fmt.Errorf("%w: read %s: %w", store.ErrIO, s.path, err)
	}

	links, err := store.Decode(data)
	if err != nil {
		return links, fmt.Errorf("%s: %w", s.path, err)
	}
	return links, nil
}

// Save replaces the document with links. The new content is written to a temporary
// file next to the target and renamed over it, so readers never see a partial write.
func (s *Store) Save(_ context.Context, links domain.Links) error {
	data, err := store.Encode(links)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", store.ErrIO, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", store.ErrIO, s.path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
