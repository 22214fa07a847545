package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// MockFileSystem provides an in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string][]byte
	currentDir string
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string][]byte),
		currentDir: "/workspace",
	}
}

// AddFile adds a file to the mock filesystem, replacing any previous content
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	mfs.files[filepath.Clean(path)] = content
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	content, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return content, nil
}

func (mfs *MockFileSystem) Create(path string, data []byte) error {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; exists {
		return fmt.Errorf("%s already exists", path)
	}

	mfs.files[cleanPath] = data
	return nil
}

func (mfs *MockFileSystem) Overwrite(path string, data []byte) error {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		return fs.ErrNotExist
	}

	mfs.files[cleanPath] = data
	return nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// Paths returns all file paths in the mock filesystem, sorted (for debugging)
func (mfs *MockFileSystem) Paths() []string {
	var paths []string
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
