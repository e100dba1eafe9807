package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyorci/conveyor/internal/errors"
)

func executeValidate(t *testing.T, args ...string) error {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{"validate"}, args...))
	return cmd.Execute()
}

func TestValidateCmd_ValidWorkflow(t *testing.T) {
	t.Setenv("CONVEYOR_HOME", t.TempDir())

	path := writeWorkflow(t, `
name: CI
on:
  push:
    branches: [main]
jobs:
  build:
    steps:
      - run: cargo build
      - run: cargo test
`)

	require.NoError(t, executeValidate(t, path))
	require.NoError(t, executeValidate(t, path, "--output", "json"))
}

func TestValidateCmd_InvalidWorkflow(t *testing.T) {
	t.Setenv("CONVEYOR_HOME", t.TempDir())

	path := writeWorkflow(t, `
name: CI
on:
  push:
jobs: {}
`)

	err := executeValidate(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoJobs)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	t.Setenv("CONVEYOR_HOME", t.TempDir())

	err := executeValidate(t, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWorkflowFileMissing)
}
