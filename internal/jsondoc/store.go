package jsondoc

import (
	"fmt"

	"github.com/jakoblorz/lintkit/internal/filesystem"
)

// NotFoundError indicates a required file is missing from the workspace tree.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// ParseError indicates a file exists but is not valid JSON-with-comments.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Transform maps a parsed document to its replacement. Returning a
// differently-shaped value is allowed.
type Transform func(doc Value) (Value, error)

// Store reads and rewrites JSON documents in the workspace tree. Documents
// are read fresh on every operation; nothing is cached between calls.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a Store over the given filesystem.
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Read loads and parses the document at path.
func (s *Store) Read(path string) (Value, error) {
	if !s.fs.Exists(path) {
		return nil, &NotFoundError{Path: path}
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return doc, nil
}

// Write applies transform to the document at path and persists the result.
// A missing file is synthesized by transforming an empty object and created;
// an existing file is read, transformed, and overwritten.
func (s *Store) Write(path string, transform Transform) error {
	if !s.fs.Exists(path) {
		doc, err := transform(NewObject())
		if err != nil {
			return err
		}

		data, err := Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", path, err)
		}

		return s.fs.Create(path, data)
	}

	doc, err := s.Read(path)
	if err != nil {
		return err
	}

	doc, err = transform(doc)
	if err != nil {
		return err
	}

	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	return s.fs.Overwrite(path, data)
}
