// Package constants provides centralized constant values used throughout Conveyor.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by Conveyor for organizing data.
const (
	// ConveyorHome is the hidden directory name where Conveyor stores all its data.
	// This directory is created in the user's home directory.
	ConveyorHome = ".conveyor"

	// LogsDir is the directory name where engine log files are stored.
	LogsDir = "logs"

	// RunsDir is the directory name where per-run step output files are stored.
	RunsDir = "runs"
)

// File names used by Conveyor.
const (
	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "conveyor.log"

	// DefaultWorkflowFileName is the workflow definition file looked up when
	// no path is given on the command line.
	DefaultWorkflowFileName = "conveyor.yaml"
)

// Environment variables read by the engine.
const (
	// CheckoutDirEnvVar names the host-provided checkout location. Its value
	// is where the builtin checkout action sources the repository from.
	CheckoutDirEnvVar = "CONVEYOR_CHECKOUT_DIR"
)

// Execution defaults.
const (
	// DefaultShell is the program used to interpret step run commands.
	DefaultShell = "sh"

	// DefaultStepTimeout is the default maximum duration for a single step.
	// Zero disables the per-step deadline entirely.
	DefaultStepTimeout = 30 * time.Minute
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 30

	// LogCompress controls gzip compression of rotated files.
	LogCompress = true
)
