package io

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var _ FileIO = (*LibraryFileSystem)(nil)

// LibraryFileSystem is the default implementation of file io using the os package
type LibraryFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *LibraryFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

// ReadFile is a wrapper around os.ReadFile
func (o *LibraryFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data through a temporary file in the same directory and
// renames it into place, so readers never observe a partial file.
func (o *LibraryFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(name)
	tmp := filepath.Join(dir, "."+filepath.Base(name)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file into place: %w", err)
	}
	return nil
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *LibraryFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// Remove is a wrapper around os.Remove
func (o *LibraryFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveDir removes a directory only when it is empty.
func (o *LibraryFileSystem) RemoveDir(name string) error {
	entries, err := os.ReadDir(name)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("directory not empty: %s", name)
	}
	return os.Remove(name)
}

// WalkDir walks the tree rooted at root on the host filesystem.
func (o *LibraryFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (o *LibraryFileSystem) FileExists(path string) bool {
	_, err := o.Stat(path)
	return err == nil
}
