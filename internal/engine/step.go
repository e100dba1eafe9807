package engine

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/conveyorci/conveyor/internal/ctxutil"
	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/logstore"
)

// StepExecutor runs a single step: it resolves the step's command, spawns
// one external process with the merged environment, streams the combined
// output into the log store, and derives the step status from the exit
// code and the step's failure policy.
//
// This is the only part of the engine that performs real I/O; everything
// above it is pure bookkeeping over StepResults.
type StepExecutor struct {
	runner   CommandRunner
	store    *logstore.Store
	resolver *ActionResolver
	logger   zerolog.Logger

	shell   string
	workDir string
	timeout time.Duration
	hostEnv []string
}

// NewStepExecutor creates a step executor. hostEnv is the engine process
// environment propagated beneath the workflow mapping; pass os.Environ()
// outside of tests.
func NewStepExecutor(runner CommandRunner, store *logstore.Store, resolver *ActionResolver,
	logger zerolog.Logger, shell, workDir string, timeout time.Duration, hostEnv []string,
) *StepExecutor {
	return &StepExecutor{
		runner:   runner,
		store:    store,
		resolver: resolver,
		logger:   logger,
		shell:    shell,
		workDir:  workDir,
		timeout:  timeout,
		hostEnv:  hostEnv,
	}
}

// RunStep executes one step and returns its result. The returned error is
// non-nil only when the context was already done before launch; every
// execution outcome, including launch failures, is expressed through the
// result's status instead.
func (e *StepExecutor) RunStep(ctx context.Context, runID, jobName string, stepIndex int,
	step *domain.StepDefinition, workflowEnv map[string]string,
) (domain.StepResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.StepResult{}, err
	}

	result := domain.StepResult{
		StepIndex: stepIndex,
		StepName:  step.DisplayName(),
		StartedAt: time.Now().UTC(),
	}

	command, err := e.resolveCommand(step)
	if err != nil {
		// Unresolvable action: same status path as a process that could
		// not be started.
		return e.finishStep(result, step, launchFailureExitCode, err, jobName), nil
	}

	out, outPath, err := e.store.CreateStepLog(runID, jobName, stepIndex, result.StepName)
	if err != nil {
		e.logger.Warn().Err(err).
			Str("job", jobName).
			Str("step", result.StepName).
			Msg("failed to create step log, output will be discarded")
		out = nopWriteCloser{}
	} else {
		result.OutputPath = outPath
	}

	env := BuildEnv(e.hostEnv, workflowEnv, step.Env)

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Info().
		Str("job", jobName).
		Str("step", result.StepName).
		Msg("executing step")

	exitCode, runErr := e.runner.Run(runCtx, e.workDir, e.shell, command, env.Slice(), out)
	_ = out.Close()

	return e.finishStep(result, step, exitCode, runErr, jobName), nil
}

// finishStep derives the step status and emits the completion log event.
func (e *StepExecutor) finishStep(result domain.StepResult, step *domain.StepDefinition,
	exitCode int, runErr error, jobName string,
) domain.StepResult {
	result.CompletedAt = time.Now().UTC()
	result.ExitCode = exitCode
	result.Status = deriveStatus(exitCode, step.ContinueOnError)
	if runErr != nil {
		result.ErrorMessage = runErr.Error()
	}

	duration := result.CompletedAt.Sub(result.StartedAt)
	e.logger.WithLevel(statusLevel(result.Status)).
		Str("job", jobName).
		Str("step", result.StepName).
		Str("status", result.Status.String()).
		Int("exit_code", exitCode).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("step completed")

	return result
}

// resolveCommand returns the shell command for the step, resolving action
// references through the action table.
func (e *StepExecutor) resolveCommand(step *domain.StepDefinition) (string, error) {
	if step.Run != "" {
		return step.Run, nil
	}
	return e.resolver.Resolve(step.Uses)
}

// deriveStatus maps an exit code and failure policy to a step status.
// Exit code 0 is success; anything else, launch failures included, is a
// failure tolerated or fatal per continue-on-error.
func deriveStatus(exitCode int, continueOnError bool) domain.StepStatus {
	if exitCode == 0 {
		return domain.StepStatusSuccess
	}
	if continueOnError {
		return domain.StepStatusFailedTolerated
	}
	return domain.StepStatusFailedFatal
}

// statusLevel picks the log level for a step's completion event.
func statusLevel(status domain.StepStatus) zerolog.Level {
	switch status {
	case domain.StepStatusFailedFatal:
		return zerolog.ErrorLevel
	case domain.StepStatusFailedTolerated:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// nopWriteCloser discards writes; used when the step log file could not be
// created.
type nopWriteCloser struct{}

func (nopWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopWriteCloser) Close() error                { return nil }

var _ io.WriteCloser = nopWriteCloser{}
