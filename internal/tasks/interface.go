package tasks

import "context"

// Runner executes the external tasks the schematic delegates to: code
// generation (synchronous) and package installation (deferred).
type Runner interface {
	// RunSchematic invokes an external code-generation schematic for a
	// project. It mutates the same workspace tree the pipeline operates on,
	// so it runs synchronously in step order.
	RunSchematic(ctx context.Context, name, project string) error

	// ScheduleInstall enqueues a package install to run after the pipeline
	// completes. The pipeline never waits for it nor observes its result.
	ScheduleInstall()

	// Drain executes the scheduled tasks in order. The shell calls this
	// once the pipeline has finished.
	Drain(ctx context.Context) error
}
