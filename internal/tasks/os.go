package tasks

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// ExecRunner implements Runner by shelling out to the workspace's tooling.
type ExecRunner struct {
	root           string
	packageManager string
	out            io.Writer

	scheduledInstalls int
}

// NewExecRunner creates a runner operating in the given workspace root.
// packageManager is the install command to use (npm, yarn, pnpm).
func NewExecRunner(root, packageManager string, out io.Writer) *ExecRunner {
	return &ExecRunner{
		root:           root,
		packageManager: packageManager,
		out:            out,
	}
}

func (r *ExecRunner) RunSchematic(ctx context.Context, name, project string) error {
	cmd := exec.CommandContext(ctx, "npx", "ng", "generate", name, "--project", project)
	cmd.Dir = r.root
	cmd.Stdout = r.out
	cmd.Stderr = r.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("schematic %s failed for project %s: %w", name, project, err)
	}

	return nil
}

func (r *ExecRunner) ScheduleInstall() {
	r.scheduledInstalls++
}

func (r *ExecRunner) Drain(ctx context.Context) error {
	for r.scheduledInstalls > 0 {
		r.scheduledInstalls--

		fmt.Fprintf(r.out, "Running %s install...\n", r.packageManager)

		cmd := exec.CommandContext(ctx, r.packageManager, "install")
		cmd.Dir = r.root
		cmd.Stdout = r.out
		cmd.Stderr = r.out

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s install failed: %w", r.packageManager, err)
		}
	}

	return nil
}
