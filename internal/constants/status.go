package constants

// StepStatus represents the terminal state of a single executed (or skipped)
// step. Status values use snake_case for JSON serialization compatibility.
type StepStatus string

// Step status constants. A step reaches exactly one of these.
const (
	// StepStatusSuccess indicates the step's process exited with code 0.
	StepStatusSuccess StepStatus = "success"

	// StepStatusFailedFatal indicates a non-zero exit (or launch failure) on a
	// step without continue-on-error. It aborts the remaining steps of the job.
	StepStatusFailedFatal StepStatus = "failed_fatal"

	// StepStatusFailedTolerated indicates a non-zero exit (or launch failure)
	// on a step with continue-on-error. The job continues and the failure
	// never escalates past the step.
	StepStatusFailedTolerated StepStatus = "failed_tolerated"

	// StepStatusSkipped indicates the step was never launched because an
	// earlier step in the job failed fatally.
	StepStatusSkipped StepStatus = "skipped"
)

// String returns the string representation of the StepStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s StepStatus) String() string {
	return string(s)
}

// Failed reports whether the status records a process failure of any kind.
func (s StepStatus) Failed() bool {
	return s == StepStatusFailedFatal || s == StepStatusFailedTolerated
}

// JobStatus represents the terminal state of one job of a run.
type JobStatus string

// Job status constants.
const (
	// JobStatusSuccess indicates every step finished with status success or
	// failed_tolerated.
	JobStatusSuccess JobStatus = "success"

	// JobStatusFailed indicates at least one step failed fatally.
	JobStatusFailed JobStatus = "failed"

	// JobStatusSkipped indicates the job's own trigger constraint rejected the
	// event; no step of the job was launched.
	JobStatusSkipped JobStatus = "skipped"
)

// String returns the string representation of the JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// RunStatus represents the overall outcome of a triggered run.
type RunStatus string

// Run status constants.
const (
	// RunStatusSuccess indicates no job failed.
	RunStatusSuccess RunStatus = "success"

	// RunStatusFailed indicates at least one job failed.
	RunStatusFailed RunStatus = "failed"

	// RunStatusSkipped indicates the workflow's trigger rules rejected the
	// event and the run was never started.
	RunStatusSkipped RunStatus = "skipped"
)

// String returns the string representation of the RunStatus.
func (s RunStatus) String() string {
	return string(s)
}
