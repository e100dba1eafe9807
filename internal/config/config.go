// Package config provides configuration management for Conveyor with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (CONVEYOR_* prefix)
//  3. Project config (.conveyor/config.yaml)
//  4. Global config (~/.conveyor/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for Conveyor.
type Config struct {
	// Engine contains settings for workflow execution.
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`

	// Actions maps action reference names (step "uses" values) to the shell
	// commands that implement them. The builtin checkout action is always
	// available and need not be listed.
	Actions map[string]string `yaml:"actions" mapstructure:"actions"`

	// Logs contains settings for step output capture.
	Logs LogsConfig `yaml:"logs" mapstructure:"logs"`
}

// EngineConfig contains settings for workflow execution.
type EngineConfig struct {
	// Shell is the program used to interpret step run commands
	// (invoked as `<shell> -c <command>`).
	// Default: "sh"
	Shell string `yaml:"shell" mapstructure:"shell"`

	// StepTimeout is the maximum duration for a single step's process.
	// Zero disables the deadline.
	// Default: 30 minutes
	StepTimeout time.Duration `yaml:"step_timeout" mapstructure:"step_timeout"`

	// WorkDir is the directory steps execute in. Empty means the current
	// working directory of the engine process.
	WorkDir string `yaml:"work_dir" mapstructure:"work_dir"`

	// CheckoutDir is the host-provided checkout location consumed by the
	// builtin checkout action. Defaults to the CONVEYOR_CHECKOUT_DIR
	// environment variable.
	CheckoutDir string `yaml:"checkout_dir" mapstructure:"checkout_dir"`
}

// LogsConfig contains settings for step output capture.
type LogsConfig struct {
	// Dir is the root directory for per-run step output files.
	// Empty means ~/.conveyor/runs.
	Dir string `yaml:"dir" mapstructure:"dir"`
}
