package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/lintkit/internal/config"
	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/schematic"
	"github.com/jakoblorz/lintkit/internal/tasks"
	"github.com/jakoblorz/lintkit/internal/workspace"
	"github.com/spf13/cobra"
)

// RunnerFactory builds the task runner once the workspace root and package
// manager are known.
type RunnerFactory func(root, packageManager string, out io.Writer) tasks.Runner

var (
	headlineStyle = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// ConfigureCommand handles the configure command
type ConfigureCommand struct {
	fs        filesystem.FileSystem
	newRunner RunnerFactory
}

// NewConfigureCommand creates a new configure command
func NewConfigureCommand(fs filesystem.FileSystem, newRunner RunnerFactory) *cobra.Command {
	cmd := &ConfigureCommand{fs: fs, newRunner: newRunner}

	cobraCmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure linting and formatting for a workspace project",
		Long: `Writes tslint.json, .prettierrc and .stylelintrc for the target project,
merges the required devDependencies into package.json, and schedules a
package install.`,
		RunE: cmd.Run,
	}

	registerConfigureFlags(cobraCmd)

	return cobraCmd
}

func registerConfigureFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "p", "", "Project name to configure (optional in single-project workspaces)")
	cmd.Flags().Bool("skip-install", false, "Do not schedule a package install after configuring")
	cmd.Flags().String("package-manager", "", "Package manager for the install task (npm, yarn, pnpm)")
}

// Run executes the configure command
func (c *ConfigureCommand) Run(cmd *cobra.Command, args []string) error {
	projectFlag, _ := cmd.Flags().GetString("project")
	skipInstallFlag, _ := cmd.Flags().GetBool("skip-install")
	packageManagerFlag, _ := cmd.Flags().GetString("package-manager")

	out := cmd.OutOrStdout()

	ws := workspace.New(c.fs)
	if err := ws.Detect(); err != nil {
		return fmt.Errorf("failed to detect workspace: %w", err)
	}

	settings, err := config.Load(c.fs, ws.RootPath)
	if err != nil {
		return err
	}

	if packageManagerFlag != "" {
		if !config.ValidPackageManager(packageManagerFlag) {
			return fmt.Errorf("unsupported package manager %q (expected npm, yarn, or pnpm)", packageManagerFlag)
		}
		settings.PackageManager = packageManagerFlag
	}
	skipInstall := settings.SkipInstall || skipInstallFlag

	fmt.Fprintln(out, headlineStyle.Render("lintkit configure"))

	runner := c.newRunner(ws.RootPath, settings.PackageManager, out)

	pipeline := schematic.NewConfigureLinters(c.fs, runner, out)
	opts := schematic.Options{
		Project:     projectFlag,
		SkipInstall: skipInstall,
	}
	if err := pipeline.Run(cmd.Context(), ws, opts); err != nil {
		return err
	}

	// the pipeline only schedules the install; the shell runs it
	if err := runner.Drain(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("Done."))
	return nil
}
