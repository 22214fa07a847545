package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// OSFileSystem implements FileSystem using real OS operations
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (osfs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Create writes a new file, making parent directories as needed.
// It fails if the file already exists.
func (osfs *OSFileSystem) Create(path string, data []byte) error {
	if osfs.Exists(path) {
		return fmt.Errorf("%s already exists", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// Overwrite replaces the contents of an existing file.
func (osfs *OSFileSystem) Overwrite(path string, data []byte) error {
	if !osfs.Exists(path) {
		return fmt.Errorf("%s does not exist", path)
	}

	return os.WriteFile(path, data, 0644)
}

func (osfs *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osfs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
