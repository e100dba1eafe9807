// Package errors provides centralized error handling for Conveyor.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrRunFailed indicates the run completed but at least one job failed.
	// The CLI maps this to a non-zero process exit code.
	ErrRunFailed = errors.New("run failed")

	// ErrDefinitionInvalid is the category for all workflow definition errors.
	// Specific definition errors below wrap or accompany it.
	ErrDefinitionInvalid = errors.New("invalid workflow definition")

	// ErrDuplicateJobName indicates two jobs in a workflow share a name.
	ErrDuplicateJobName = errors.New("duplicate job name")

	// ErrNoJobs indicates a workflow declares no jobs at all.
	ErrNoJobs = errors.New("workflow has no jobs")

	// ErrEmptyJob indicates a job declares an empty step list.
	ErrEmptyJob = errors.New("job has no steps")

	// ErrUnknownEventKind indicates a trigger rule names an event kind the
	// engine does not understand.
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrStepAction indicates a step declares both or neither of run and uses.
	ErrStepAction = errors.New("step must declare exactly one of run or uses")

	// ErrActionNotFound indicates a uses reference has no entry in the
	// configured action table.
	ErrActionNotFound = errors.New("action not found")

	// ErrCommandFailed indicates that a step command execution failed.
	ErrCommandFailed = errors.New("command failed")

	// ErrCheckoutDirUnset indicates the builtin checkout action ran without a
	// host-provided checkout location.
	ErrCheckoutDirUnset = errors.New("checkout directory not set")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidEngine indicates an invalid engine configuration value.
	ErrConfigInvalidEngine = errors.New("invalid engine configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrWorkflowFileMissing indicates the workflow definition file does not exist.
	ErrWorkflowFileMissing = errors.New("workflow file not found")

	// ErrWorkflowParse indicates the workflow file has invalid YAML syntax.
	ErrWorkflowParse = errors.New("workflow parse error")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidEnvVarName indicates that an environment variable name is invalid.
	ErrInvalidEnvVarName = errors.New("invalid environment variable name")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")
)
