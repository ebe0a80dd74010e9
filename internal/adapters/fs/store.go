// Package fs provides the file system adapter for the SSH config document.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.DocumentStore on the local file system.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the content of the file at path.
func (s *Store) Read(path string) (string, error) {
	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot open "+path), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

// Write replaces the file at path with content. The new content is written to
// a temporary file next to the target and renamed over it, so readers never
// see a partial file. Symlinks are followed and the permission bits of the
// existing file are kept.
func (s *Store) Write(path, content string) error {
	target, mode, err := resolveTarget(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

// resolveTarget follows symlinks and returns the real path and the mode to
// write with. A missing file gets domain.FilePerm.
func resolveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, domain.FilePerm, nil
		}
		return "", 0, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}
