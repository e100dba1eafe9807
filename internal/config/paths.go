package config

import (
	"os"
	"path/filepath"

	"github.com/conveyorci/conveyor/internal/constants"
	"github.com/conveyorci/conveyor/internal/errors"
)

// HomeEnvVar overrides the Conveyor home directory location when set.
const HomeEnvVar = "CONVEYOR_HOME"

// ConveyorHome returns the Conveyor home directory path.
// If the CONVEYOR_HOME environment variable is set, it is used as-is.
// Otherwise the default is ~/.conveyor.
func ConveyorHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	return filepath.Join(home, constants.ConveyorHome), nil
}

// GlobalConfigDir returns the directory holding the global config file.
func GlobalConfigDir() (string, error) {
	return ConveyorHome()
}

// ProjectConfigPath returns the path of the project-level config file,
// relative to the current working directory.
func ProjectConfigPath() string {
	return filepath.Join(".conveyor", "config.yaml")
}

// DefaultRunsDir returns the default root for per-run step output files.
func DefaultRunsDir() (string, error) {
	home, err := ConveyorHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.RunsDir), nil
}
