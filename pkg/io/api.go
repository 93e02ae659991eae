package io

import (
	"io/fs"
	"os"
)

// FileIO is an interface for the file operations the exporter performs.
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(name string, perm os.FileMode) error
	Remove(name string) error
	RemoveDir(name string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	FileExists(path string) bool
}
