package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/conveyorci/conveyor/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			// Shell: "sh" keeps step commands portable; projects that need
			// bash features override this per config.
			Shell: constants.DefaultShell,

			// StepTimeout: 30 minutes bounds a runaway build without
			// interfering with ordinary compile-and-test steps.
			StepTimeout: constants.DefaultStepTimeout,

			// CheckoutDir comes from the host environment; the runner
			// infrastructure that triggered the event sets it.
			CheckoutDir: os.Getenv(constants.CheckoutDirEnvVar),
		},
		Actions: map[string]string{},
		Logs:    LogsConfig{},
	}
}

// setDefaults registers default values on a viper instance so that config
// files and environment variables only need to name what they change.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.shell", constants.DefaultShell)
	v.SetDefault("engine.step_timeout", constants.DefaultStepTimeout)
	v.SetDefault("engine.work_dir", "")
	v.SetDefault("engine.checkout_dir", os.Getenv(constants.CheckoutDirEnvVar))
	v.SetDefault("logs.dir", "")
}
