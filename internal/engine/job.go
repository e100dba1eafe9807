package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/conveyorci/conveyor/internal/domain"
)

// JobRunner executes the steps of a single job strictly in declaration
// order. The first fatal step failure aborts the job: the remaining steps
// are recorded as skipped and never launched. Tolerated failures are
// recorded and execution continues.
type JobRunner struct {
	steps  *StepExecutor
	logger zerolog.Logger
}

// NewJobRunner creates a job runner on top of the given step executor.
func NewJobRunner(steps *StepExecutor, logger zerolog.Logger) *JobRunner {
	return &JobRunner{steps: steps, logger: logger}
}

// RunJob executes every step of the job and returns the aggregated
// result. The job fails exactly when a fatal step failure occurred;
// tolerated failures leave the job successful.
func (r *JobRunner) RunJob(ctx context.Context, runID string, job *domain.JobDefinition,
	workflowEnv map[string]string,
) domain.JobResult {
	result := domain.JobResult{
		JobName:   job.Name,
		Status:    domain.JobStatusSuccess,
		Steps:     make([]domain.StepResult, 0, len(job.Steps)),
		StartedAt: time.Now().UTC(),
	}

	r.logger.Info().
		Str("job", job.Name).
		Int("steps", len(job.Steps)).
		Msg("starting job")

	for i := range job.Steps {
		step := &job.Steps[i]

		stepResult, err := r.steps.RunStep(ctx, runID, job.Name, i, step, workflowEnv)
		if err != nil {
			// Context done before launch: nothing else in this job will
			// run either.
			r.logger.Warn().Err(err).
				Str("job", job.Name).
				Msg("job aborted")
			r.skipRemaining(&result, job, i)
			result.Status = domain.JobStatusFailed
			break
		}

		result.Steps = append(result.Steps, stepResult)

		if stepResult.Status == domain.StepStatusFailedFatal {
			r.skipRemaining(&result, job, i+1)
			result.Status = domain.JobStatusFailed
			break
		}
	}

	result.CompletedAt = time.Now().UTC()

	r.logger.Info().
		Str("job", job.Name).
		Str("status", result.Status.String()).
		Int64("duration_ms", result.CompletedAt.Sub(result.StartedAt).Milliseconds()).
		Msg("job completed")

	return result
}

// skipRemaining records skipped results for every step from index on, so
// a truncated job still reports one result per declared step.
func (r *JobRunner) skipRemaining(result *domain.JobResult, job *domain.JobDefinition, from int) {
	now := time.Now().UTC()
	for i := from; i < len(job.Steps); i++ {
		result.Steps = append(result.Steps, domain.StepResult{
			StepIndex:   i,
			StepName:    job.Steps[i].DisplayName(),
			Status:      domain.StepStatusSkipped,
			StartedAt:   now,
			CompletedAt: now,
		})
	}
}
