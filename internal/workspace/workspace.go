package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/jsondoc"
	"github.com/jakoblorz/lintkit/internal/manifest"
	"github.com/jakoblorz/lintkit/internal/models"
)

// descriptorFileNames are the workspace descriptor candidates, in priority
// order within a directory.
var descriptorFileNames = []string{"workspace.json", "angular.json", ".angular.json"}

// AmbiguousProjectError is returned when no explicit project is given and
// the descriptor lists more than one.
type AmbiguousProjectError struct {
	Names []string
}

func (e *AmbiguousProjectError) Error() string {
	return fmt.Sprintf(
		"workspace contains multiple projects (%s); pass an explicit project name with --project <name>",
		strings.Join(e.Names, ", "),
	)
}

// Workspace represents a multi-project workspace described by a
// workspace.json/angular.json descriptor.
type Workspace struct {
	fs filesystem.FileSystem

	RootPath       string
	DescriptorPath string
	Projects       []*models.Project
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{
		fs:       fs,
		Projects: []*models.Project{},
	}
}

// Detect finds the workspace descriptor starting from the current directory
// and loads its projects. The descriptor is read-only to this tool.
func (w *Workspace) Detect() error {
	root, descriptorPath, err := w.findWorkspaceRoot()
	if err != nil {
		return err
	}

	w.RootPath = root
	w.DescriptorPath = descriptorPath

	if err := w.loadProjects(); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	return nil
}

// findWorkspaceRoot walks up the directory tree looking for a descriptor
// candidate.
func (w *Workspace) findWorkspaceRoot() (string, string, error) {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		for _, name := range descriptorFileNames {
			candidate := filepath.Join(dir, name)
			if w.fs.Exists(candidate) {
				return dir, candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("workspace not found (no %s)", strings.Join(descriptorFileNames, ", "))
		}
		dir = parent
	}
}

func (w *Workspace) loadProjects() error {
	data, err := w.fs.ReadFile(w.DescriptorPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", w.DescriptorPath, err)
	}

	doc, err := jsondoc.Parse(data)
	if err != nil {
		return &jsondoc.ParseError{Path: w.DescriptorPath, Err: err}
	}

	if err := validateDescriptor(data); err != nil {
		return fmt.Errorf("%s: %w", w.DescriptorPath, err)
	}

	// the schema guarantees the shapes accessed below
	obj, _ := jsondoc.AsObject(doc)
	projectsValue, _ := obj.Get("projects")
	projects, _ := jsondoc.AsObject(projectsValue)

	for _, name := range projects.Keys() {
		value, _ := projects.Get(name)
		descriptor, _ := jsondoc.AsObject(value)

		rootValue, _ := descriptor.Get("root")
		root, _ := jsondoc.AsString(rootValue)

		prefix := ""
		if prefixValue, ok := descriptor.Get("prefix"); ok {
			prefix, _ = jsondoc.AsString(prefixValue)
		}

		w.Projects = append(w.Projects, models.NewProject(name, filepath.Join(w.RootPath, root), prefix))
	}

	return nil
}

// GetProject returns a project by name.
func (w *Workspace) GetProject(name string) (*models.Project, error) {
	for _, p := range w.Projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("project %s not found in workspace", name)
}

// GetProjectNames returns a list of all project names.
func (w *Workspace) GetProjectNames() []string {
	names := make([]string, len(w.Projects))
	for i, p := range w.Projects {
		names[i] = p.Name
	}
	return names
}

// DefaultProject resolves the implicit target project: a single-project
// workspace selects that project, anything else needs an explicit name.
func (w *Workspace) DefaultProject() (string, error) {
	switch len(w.Projects) {
	case 0:
		return "", fmt.Errorf("no projects found in workspace")
	case 1:
		return w.Projects[0].Name, nil
	default:
		return "", &AmbiguousProjectError{Names: w.GetProjectNames()}
	}
}

// ManifestPath returns the path to the root package.json.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.RootPath, manifest.FileName)
}
