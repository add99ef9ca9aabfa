// Package exec provides the external process execution adapter.
package exec

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"

	"agw-agent/internal/port"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using
// the standard os/exec package.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Run executes the command and returns its exit code and combined output.
// A non-zero exit code is reported through the code, not as an error; err is
// reserved for spawn failures.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args ...string) (int, []byte, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), output, nil
		}
		return -1, output, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return 0, output, nil
}
