package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/jsondoc"
	"github.com/jakoblorz/lintkit/internal/manifest"
)

// Builder helps create test workspaces
type Builder struct {
	fs             *filesystem.MockFileSystem
	root           string
	descriptorFile string
	projects       []builderProject
}

type builderProject struct {
	Name   string
	Root   string
	Prefix string
}

// NewBuilder creates a new Builder rooted at root, describing the
// workspace through an angular.json by default.
func NewBuilder(root string) *Builder {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir(root)

	return &Builder{
		fs:             fs,
		root:           root,
		descriptorFile: "angular.json",
	}
}

// WithDescriptorFile selects which descriptor candidate Build writes.
func (wb *Builder) WithDescriptorFile(name string) *Builder {
	wb.descriptorFile = name
	return wb
}

// AddProject adds a project to the workspace descriptor. An empty prefix is
// omitted from the descriptor entirely.
func (wb *Builder) AddProject(name, root, prefix string) *Builder {
	wb.projects = append(wb.projects, builderProject{Name: name, Root: root, Prefix: prefix})
	return wb
}

// AddManifest writes a root package.json with the given content.
func (wb *Builder) AddManifest(content string) *Builder {
	wb.fs.AddFile(filepath.Join(wb.root, manifest.FileName), []byte(content))
	return wb
}

// AddFile writes an arbitrary file into the workspace.
func (wb *Builder) AddFile(path, content string) *Builder {
	wb.fs.AddFile(filepath.Join(wb.root, path), []byte(content))
	return wb
}

// Build writes the descriptor and returns the filesystem.
func (wb *Builder) Build() *filesystem.MockFileSystem {
	projects := jsondoc.NewObject()
	for _, p := range wb.projects {
		descriptor := jsondoc.NewObject()
		descriptor.Set("root", p.Root)
		if p.Prefix != "" {
			descriptor.Set("prefix", p.Prefix)
		}
		projects.Set(p.Name, descriptor)
	}

	doc := jsondoc.NewObject()
	doc.Set("projects", projects)

	data, err := jsondoc.Marshal(doc)
	if err != nil {
		panic(err)
	}

	wb.fs.AddFile(filepath.Join(wb.root, wb.descriptorFile), data)
	return wb.fs
}

// FileSystem returns the mock filesystem
func (wb *Builder) FileSystem() *filesystem.MockFileSystem {
	return wb.fs
}
