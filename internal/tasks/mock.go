package tasks

import (
	"context"
	"fmt"
)

// MockRunner records task invocations for testing
type MockRunner struct {
	// Calls lists every invocation in order, e.g.
	// "schematic lint-baseline --project web", "schedule install", "install".
	Calls []string

	// SchematicErr, when set, is returned from RunSchematic.
	SchematicErr error

	scheduledInstalls int
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (r *MockRunner) RunSchematic(ctx context.Context, name, project string) error {
	r.Calls = append(r.Calls, fmt.Sprintf("schematic %s --project %s", name, project))
	return r.SchematicErr
}

func (r *MockRunner) ScheduleInstall() {
	r.Calls = append(r.Calls, "schedule install")
	r.scheduledInstalls++
}

func (r *MockRunner) Drain(ctx context.Context) error {
	for r.scheduledInstalls > 0 {
		r.scheduledInstalls--
		r.Calls = append(r.Calls, "install")
	}
	return nil
}

// PendingInstalls returns the number of scheduled but not yet drained
// install tasks.
func (r *MockRunner) PendingInstalls() int {
	return r.scheduledInstalls
}
