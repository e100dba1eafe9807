package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/conveyorci/conveyor/internal/config"
	"github.com/conveyorci/conveyor/internal/ctxutil"
	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/logstore"
	"github.com/conveyorci/conveyor/internal/workflow"
)

// Engine coordinates a full workflow run for a triggering event.
type Engine struct {
	jobs   *JobRunner
	logger zerolog.Logger
}

// New assembles an engine from configuration. runner may be swapped in
// tests; hostEnv is propagated to every step beneath the workflow env.
func New(cfg *config.Config, store *logstore.Store, runner CommandRunner,
	logger zerolog.Logger, hostEnv []string,
) *Engine {
	resolver := NewActionResolver(cfg.Actions, cfg.Engine.CheckoutDir)
	steps := NewStepExecutor(runner, store, resolver, logger,
		cfg.Engine.Shell, cfg.Engine.WorkDir, cfg.Engine.StepTimeout, hostEnv)

	return &Engine{
		jobs:   NewJobRunner(steps, logger),
		logger: logger,
	}
}

// RunWorkflow evaluates the workflow's triggers against the event and, if
// they admit it, executes every eligible job concurrently. A declined
// trigger yields a skipped run with no job results and no processes
// launched. The returned error is non-nil only when the context was done
// before any work started.
func (e *Engine) RunWorkflow(ctx context.Context, def *domain.WorkflowDefinition,
	event domain.Event,
) (*domain.RunResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := e.logger.With().
		Str("run_id", runID).
		Str("workflow", def.Name).
		Logger()

	result := &domain.RunResult{
		RunID:        runID,
		WorkflowName: def.Name,
		StartedAt:    time.Now().UTC(),
	}

	if !workflow.ShouldRun(event, def) {
		logger.Info().
			Str("event", string(event.Kind)).
			Str("branch", event.Branch).
			Msg("triggers do not match event, run skipped")
		result.Status = domain.RunStatusSkipped
		result.CompletedAt = time.Now().UTC()
		return result, nil
	}

	logger.Info().
		Str("event", string(event.Kind)).
		Str("branch", event.Branch).
		Int("jobs", len(def.Jobs)).
		Msg("starting run")

	// One slot per job; each goroutine writes only its own index, so the
	// Wait below is the only synchronization needed. Goroutines always
	// return nil: a failing job must not cancel its siblings.
	results := make([]domain.JobResult, len(def.Jobs))

	var group errgroup.Group
	for i := range def.Jobs {
		job := &def.Jobs[i]
		group.Go(func() error {
			if !workflow.JobShouldRun(event, job) {
				logger.Info().
					Str("job", job.Name).
					Msg("job constraints do not match event, job skipped")
				now := time.Now().UTC()
				results[i] = domain.JobResult{
					JobName:     job.Name,
					Status:      domain.JobStatusSkipped,
					StartedAt:   now,
					CompletedAt: now,
				}
				return nil
			}

			results[i] = e.jobs.RunJob(ctx, runID, job, def.Env)
			return nil
		})
	}
	_ = group.Wait()

	result.Jobs = results
	result.Status = reduceRunStatus(results)
	result.CompletedAt = time.Now().UTC()

	logger.Info().
		Str("status", result.Status.String()).
		Int64("duration_ms", result.CompletedAt.Sub(result.StartedAt).Milliseconds()).
		Msg("run completed")

	return result, nil
}

// reduceRunStatus folds job results into the overall run status. Any
// failed job fails the run; skipped jobs never do.
func reduceRunStatus(jobs []domain.JobResult) domain.RunStatus {
	for i := range jobs {
		if jobs[i].Status == domain.JobStatusFailed {
			return domain.RunStatusFailed
		}
	}
	return domain.RunStatusSuccess
}
