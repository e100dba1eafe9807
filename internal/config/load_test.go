package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyorci/conveyor/internal/config"
	"github.com/conveyorci/conveyor/internal/constants"
	"github.com/conveyorci/conveyor/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, constants.DefaultShell, cfg.Engine.Shell)
	assert.Equal(t, constants.DefaultStepTimeout, cfg.Engine.StepTimeout)
	assert.Empty(t, cfg.Actions)
}

func TestLoadFromPaths_Defaults(t *testing.T) {
	cfg, err := config.LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultShell, cfg.Engine.Shell)
	assert.Equal(t, constants.DefaultStepTimeout, cfg.Engine.StepTimeout)
}

func TestLoadFromPaths_GlobalConfig(t *testing.T) {
	globalPath := writeConfig(t, t.TempDir(), `
engine:
  shell: bash
  step_timeout: 5m
actions:
  checkout-submodules: git submodule update --init
`)

	cfg, err := config.LoadFromPaths(context.Background(), "", globalPath)
	require.NoError(t, err)

	assert.Equal(t, "bash", cfg.Engine.Shell)
	assert.Equal(t, 5*time.Minute, cfg.Engine.StepTimeout)
	assert.Equal(t, "git submodule update --init", cfg.Actions["checkout-submodules"])
}

func TestLoadFromPaths_ProjectOverridesGlobal(t *testing.T) {
	globalPath := writeConfig(t, t.TempDir(), `
engine:
  shell: bash
  step_timeout: 5m
`)
	projectPath := writeConfig(t, t.TempDir(), `
engine:
  shell: zsh
`)

	cfg, err := config.LoadFromPaths(context.Background(), projectPath, globalPath)
	require.NoError(t, err)

	// Project wins where it speaks, global fills the rest.
	assert.Equal(t, "zsh", cfg.Engine.Shell)
	assert.Equal(t, 5*time.Minute, cfg.Engine.StepTimeout)
}

func TestLoadFromPaths_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "empty shell",
			content: `
engine:
  shell: "  "
`,
			wantErr: errors.ErrEmptyValue,
		},
		{
			name: "negative step timeout",
			content: `
engine:
  step_timeout: -1s
`,
			wantErr: errors.ErrValueOutOfRange,
		},
		{
			name: "action with empty command",
			content: `
actions:
  broken: "   "
`,
			wantErr: errors.ErrEmptyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := config.LoadFromPaths(context.Background(), "", path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	err := config.Validate(nil)
	assert.ErrorIs(t, err, errors.ErrConfigNil)
}

func TestConveyorHome_EnvOverride(t *testing.T) {
	custom := t.TempDir()
	t.Setenv(config.HomeEnvVar, custom)

	home, err := config.ConveyorHome()
	require.NoError(t, err)
	assert.Equal(t, custom, home)
}

func TestDefaultRunsDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv(config.HomeEnvVar, custom)

	dir, err := config.DefaultRunsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(custom, constants.RunsDir), dir)
}
