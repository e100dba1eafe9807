// Package domain provides shared domain types for the Conveyor workflow engine.
package domain

import "github.com/conveyorci/conveyor/internal/constants"

// Re-export status types from the constants package.
// This allows consumers to import domain types and status types together,
// providing a unified API for working with Conveyor domain objects.
//
// Example usage:
//
//	import "github.com/conveyorci/conveyor/internal/domain"
//
//	result := domain.StepResult{
//	    Status: domain.StepStatusSuccess,
//	}
type (
	// StepStatus represents the terminal state of a single step.
	StepStatus = constants.StepStatus

	// JobStatus represents the terminal state of one job of a run.
	JobStatus = constants.JobStatus

	// RunStatus represents the overall outcome of a triggered run.
	RunStatus = constants.RunStatus
)

// Re-export StepStatus constants for convenience.
// These mirror the values in internal/constants/status.go.
const (
	// StepStatusSuccess indicates the step's process exited with code 0.
	StepStatusSuccess = constants.StepStatusSuccess

	// StepStatusFailedFatal indicates a fatal failure that aborts the job.
	StepStatusFailedFatal = constants.StepStatusFailedFatal

	// StepStatusFailedTolerated indicates a tolerated, non-propagating failure.
	StepStatusFailedTolerated = constants.StepStatusFailedTolerated

	// StepStatusSkipped indicates the step was never launched.
	StepStatusSkipped = constants.StepStatusSkipped
)

// Re-export JobStatus constants for convenience.
const (
	// JobStatusSuccess indicates every step succeeded or was tolerated.
	JobStatusSuccess = constants.JobStatusSuccess

	// JobStatusFailed indicates at least one step failed fatally.
	JobStatusFailed = constants.JobStatusFailed

	// JobStatusSkipped indicates the job's constraint rejected the event.
	JobStatusSkipped = constants.JobStatusSkipped
)

// Re-export RunStatus constants for convenience.
const (
	// RunStatusSuccess indicates no job failed.
	RunStatusSuccess = constants.RunStatusSuccess

	// RunStatusFailed indicates at least one job failed.
	RunStatusFailed = constants.RunStatusFailed

	// RunStatusSkipped indicates the run was never started.
	RunStatusSkipped = constants.RunStatusSkipped
)
