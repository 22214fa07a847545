package models

// Project represents a named project in the workspace descriptor.
type Project struct {
	// Name is the project identifier (unique within the workspace)
	Name string

	// RootPath is the absolute path to the project root
	RootPath string

	// Prefix is the component selector prefix; empty when the descriptor
	// declares none.
	Prefix string
}

// NewProject creates a new Project instance
func NewProject(name, rootPath, prefix string) *Project {
	return &Project{
		Name:     name,
		RootPath: rootPath,
		Prefix:   prefix,
	}
}
