// Package engine executes workflow definitions: it evaluates the trigger,
// fans jobs out onto their own goroutines, drives each job's steps strictly
// in order, and reduces everything into a single run result.
//
// SECURITY NOTE: The commands executed by this package come from the
// workflow definition file and the engine's action table. These are treated
// as trusted input because anyone who can modify the workflow file of a
// repository already controls what its CI runs. This is the same trust
// model as Makefiles, npm scripts, or any hosted CI configuration. The
// `sh -c` invocation is intentional to support shell features (pipes,
// redirects, `cmd || true` fallbacks) commonly used in pipeline steps.
package engine

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// launchFailureExitCode is recorded when a process could not be started at
// all (binary missing, invalid environment). There is no separate launch
// error status in this model; the failure takes the same path as a non-zero
// exit, with the error text preserved alongside.
const launchFailureExitCode = -1

// CommandRunner defines the interface for executing step commands.
// This allows for testing by injecting mock implementations.
type CommandRunner interface {
	// Run executes a shell command with the given environment and working
	// directory, streaming combined stdout/stderr to out. It returns the
	// process exit code; err is non-nil for any non-zero exit or launch
	// failure.
	Run(ctx context.Context, workDir, shell, command string, env []string, out io.Writer) (exitCode int, err error)
}

// DefaultCommandRunner implements CommandRunner using os/exec.
type DefaultCommandRunner struct{}

// Run executes a step command using `<shell> -c`.
func (r *DefaultCommandRunner) Run(ctx context.Context, workDir, shell, command string, env []string, out io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, shell, "-c", command) //nolint:gosec // workflow commands are trusted input, see package doc
	cmd.Dir = workDir
	cmd.Env = env
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}

	// Process never started.
	return launchFailureExitCode, err
}

// Ensure DefaultCommandRunner implements CommandRunner.
var _ CommandRunner = (*DefaultCommandRunner)(nil)
