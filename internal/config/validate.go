package config

import (
	"strings"

	"github.com/conveyorci/conveyor/internal/errors"
)

// Validate checks a Config for invalid values. It is called after every
// load so that a bad config fails fast, before any workflow starts.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateEngine(&cfg.Engine); err != nil {
		return err
	}

	return validateActions(cfg.Actions)
}

// validateEngine checks the execution settings.
func validateEngine(engine *EngineConfig) error {
	if strings.TrimSpace(engine.Shell) == "" {
		return errors.Wrap(errors.ErrEmptyValue, "engine.shell")
	}

	if engine.StepTimeout < 0 {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"engine.step_timeout %s must not be negative", engine.StepTimeout)
	}

	return nil
}

// validateActions rejects empty action names and empty commands, both of
// which would otherwise surface confusingly at step launch time.
func validateActions(actions map[string]string) error {
	for name, command := range actions {
		if strings.TrimSpace(name) == "" {
			return errors.Wrap(errors.ErrEmptyValue, "action name")
		}
		if strings.TrimSpace(command) == "" {
			return errors.Wrapf(errors.ErrEmptyValue, "action %q command", name)
		}
	}
	return nil
}
