package cli

import (
	"fmt"
	"io"

	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/jakoblorz/lintkit/internal/tasks"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newRunner RunnerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lintkit",
		Short: "Configure linting for Angular-style workspaces",
		Long: `A CLI tool that sets up tslint, stylelint and prettier for a workspace
project: it writes the canonical config documents, merges the required
devDependencies into package.json and schedules a package install.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `lintkit configure` when no subcommand is provided.
			return (&ConfigureCommand{fs: fs, newRunner: newRunner}).Run(cmd, args)
		},
	}

	registerConfigureFlags(rootCmd)

	rootCmd.AddCommand(NewConfigureCommand(fs, newRunner))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, func(root, packageManager string, out io.Writer) tasks.Runner {
		return tasks.NewExecRunner(root, packageManager, out)
	})

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
