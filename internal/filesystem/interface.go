package filesystem

// FileSystem provides an abstraction over workspace file operations for testability.
//
// The schematic distinguishes creating a new file from overwriting an
// existing one, so both are first-class operations instead of a single
// WriteFile with implicit upsert semantics.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	Create(path string, data []byte) error
	Overwrite(path string, data []byte) error

	// Path operations
	Exists(path string) bool
	Getwd() (string, error)
}
