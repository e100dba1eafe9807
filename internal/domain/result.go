package domain

import "time"

// StepResult captures the outcome of a single step.
type StepResult struct {
	// StepIndex is the step's position within its job definition.
	StepIndex int `json:"step_index"`

	// StepName is the step's display name.
	StepName string `json:"step_name"`

	// Status is the terminal step status.
	Status StepStatus `json:"status"`

	// ExitCode is the process exit code. Launch failures record -1; skipped
	// steps record 0 and must be distinguished by Status.
	ExitCode int `json:"exit_code"`

	// OutputPath references the captured stdout/stderr stream on disk.
	// The result does not own the content. Empty for skipped steps.
	OutputPath string `json:"output_path,omitempty"`

	// ErrorMessage preserves the launch or execution error text, if any.
	ErrorMessage string `json:"error,omitempty"`

	// StartedAt and CompletedAt bound the step's execution.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// JobResult aggregates the ordered step outcomes of one job.
// The step list never exceeds the job's declared step count; steps after a
// fatal failure appear with status skipped and were never launched.
type JobResult struct {
	// JobName is the name of the executed job.
	JobName string `json:"job_name"`

	// Status is the job's terminal status.
	Status JobStatus `json:"status"`

	// Steps are the per-step results in declared order.
	Steps []StepResult `json:"steps,omitempty"`

	// StartedAt and CompletedAt bound the job's execution.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// RunResult is produced once per triggered run. It is constructed
// incrementally as jobs complete and immutable once all jobs have reported.
type RunResult struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// WorkflowName echoes the definition's name.
	WorkflowName string `json:"workflow_name"`

	// Status is the reduced overall outcome: failed iff any job failed;
	// skipped jobs do not affect it.
	Status RunStatus `json:"status"`

	// Jobs holds one result per declared job, in declaration order.
	Jobs []JobResult `json:"jobs"`

	// StartedAt and CompletedAt bound the run.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Failed reports whether the run's overall status is failed.
func (r *RunResult) Failed() bool {
	return r.Status == RunStatusFailed
}
