// Package schematic implements the configure-linters pipeline.
package schematic

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/lintkit/internal/configs"
	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/jsondoc"
	"github.com/jakoblorz/lintkit/internal/manifest"
	"github.com/jakoblorz/lintkit/internal/models"
	"github.com/jakoblorz/lintkit/internal/tasks"
	"github.com/jakoblorz/lintkit/internal/workspace"
)

// BaselineSchematic is the external code-generation schematic that wires
// the baseline lint integration into the target project before any config
// file is written.
const BaselineSchematic = "lint-baseline"

// Options controls a ConfigureLinters run.
type Options struct {
	// Project is the explicit target project name; empty resolves the
	// implicit project from the workspace descriptor.
	Project string

	// SkipInstall leaves the post-run package install unscheduled.
	SkipInstall bool
}

// ConfigureLinters runs the linter setup pipeline: baseline lint wiring,
// formatter / linter / style-linter configs, dependency merges, and the
// deferred install.
type ConfigureLinters struct {
	fs     filesystem.FileSystem
	store  *jsondoc.Store
	runner tasks.Runner
	out    io.Writer
}

// NewConfigureLinters creates the pipeline. Progress notices are written to
// out rather than ambient process output.
func NewConfigureLinters(fs filesystem.FileSystem, runner tasks.Runner, out io.Writer) *ConfigureLinters {
	return &ConfigureLinters{
		fs:     fs,
		store:  jsondoc.NewStore(fs),
		runner: runner,
		out:    out,
	}
}

// Run executes the pipeline. Steps run in strict sequence; the first error
// aborts and files written by earlier steps stay written. Re-running
// against an already-configured workspace is safe: merges overwrite
// per key and config documents are rewritten in full.
func (c *ConfigureLinters) Run(ctx context.Context, ws *workspace.Workspace, opts Options) error {
	project, err := c.resolveProject(ws, opts.Project)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Configuring linters for project %s\n", project.Name)

	if err := c.runner.RunSchematic(ctx, BaselineSchematic, project.Name); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✓ Ran %s schematic\n", BaselineSchematic)

	manifestPath := ws.ManifestPath()

	if err := c.addDevDependencies(manifestPath, configs.FormatDependencies()); err != nil {
		return err
	}
	if err := c.writeConfig(filepath.Join(project.RootPath, configs.FormatConfigFile), configs.Format()); err != nil {
		return err
	}

	if err := c.addDevDependencies(manifestPath, configs.LintDependencies()); err != nil {
		return err
	}

	prefix := project.Prefix
	if prefix == "" {
		prefix = configs.DefaultPrefix
	}
	if err := c.writeConfig(filepath.Join(ws.RootPath, configs.LintConfigFile), configs.Lint(prefix)); err != nil {
		return err
	}

	if err := c.addDevDependencies(manifestPath, configs.StyleDependencies()); err != nil {
		return err
	}
	if err := c.writeConfig(filepath.Join(project.RootPath, configs.StyleConfigFile), configs.Style()); err != nil {
		return err
	}

	if opts.SkipInstall {
		fmt.Fprintln(c.out, "Skipping package install")
	} else {
		c.runner.ScheduleInstall()
		fmt.Fprintln(c.out, "Scheduled package install")
	}

	return nil
}

func (c *ConfigureLinters) resolveProject(ws *workspace.Workspace, hint string) (*models.Project, error) {
	name := hint
	if name == "" {
		var err error
		name, err = ws.DefaultProject()
		if err != nil {
			return nil, err
		}
	}

	return ws.GetProject(name)
}

// addDevDependencies runs one independent read-merge-sort-write cycle
// against the root manifest.
func (c *ConfigureLinters) addDevDependencies(path string, deps map[string]string) error {
	set := manifest.DependencySet{DevDependencies: deps}

	for _, warn := range manifest.CheckConstraints(set) {
		fmt.Fprintf(c.out, "⚠️  %v\n", warn)
	}

	err := c.store.Write(path, func(doc jsondoc.Value) (jsondoc.Value, error) {
		doc = manifest.Merge(doc, set)
		return manifest.SortSection(doc, manifest.DevDependenciesSection), nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "✓ Updated devDependencies in %s\n", manifest.FileName)
	return nil
}

func (c *ConfigureLinters) writeConfig(path string, doc *jsondoc.Object) error {
	err := c.store.Write(path, func(jsondoc.Value) (jsondoc.Value, error) {
		return doc, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "✓ Wrote %s\n", path)
	return nil
}
