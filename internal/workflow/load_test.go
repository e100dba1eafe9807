package workflow_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/errors"
	"github.com/conveyorci/conveyor/internal/workflow"
)

// ciWorkflow is a full three-job definition exercising triggers, a global
// environment mapping, action references, and continue-on-error.
const ciWorkflow = `
name: CI
on:
  push:
    branches: [main]
  pull_request:
    branches: [main]
env:
  CARGO_TERM_COLOR: always
jobs:
  build-and-test:
    runs-on: ubuntu-latest
    steps:
      - uses: checkout
      - name: Build
        run: cargo build --verbose
      - name: Test
        run: cargo test --verbose
  linting:
    runs-on: ubuntu-latest
    steps:
      - uses: checkout
      - name: Clippy
        run: cargo clippy -- -D warnings
  dependency-checking:
    runs-on: ubuntu-latest
    steps:
      - uses: checkout
      - name: Install cargo-outdated
        run: cargo install cargo-outdated
        continue-on-error: true
      - name: Check outdated dependencies
        run: cargo outdated --exit-code 1
`

func TestParse_FullDefinition(t *testing.T) {
	t.Parallel()

	def, err := workflow.Parse([]byte(ciWorkflow))
	require.NoError(t, err)

	assert.Equal(t, "CI", def.Name)
	assert.Equal(t, map[string]string{"CARGO_TERM_COLOR": "always"}, def.Env)

	require.Len(t, def.Triggers, 2)
	assert.Equal(t, []string{"main"}, []string(def.Triggers[domain.EventPush]))
	assert.Equal(t, []string{"main"}, []string(def.Triggers[domain.EventPullRequest]))

	// Job declaration order is preserved.
	require.Len(t, def.Jobs, 3)
	assert.Equal(t, "build-and-test", def.Jobs[0].Name)
	assert.Equal(t, "linting", def.Jobs[1].Name)
	assert.Equal(t, "dependency-checking", def.Jobs[2].Name)
	assert.Equal(t, "ubuntu-latest", def.Jobs[0].Target)

	build := def.Jobs[0]
	require.Len(t, build.Steps, 3)
	assert.Equal(t, "checkout", build.Steps[0].Uses)
	assert.Equal(t, "Build", build.Steps[1].Name)
	assert.Equal(t, "cargo build --verbose", build.Steps[1].Run)
	assert.False(t, build.Steps[1].ContinueOnError)

	deps := def.Jobs[2]
	require.Len(t, deps.Steps, 3)
	assert.True(t, deps.Steps[1].ContinueOnError)
	assert.False(t, deps.Steps[2].ContinueOnError)
}

func TestParse_BranchShorthand(t *testing.T) {
	t.Parallel()

	def, err := workflow.Parse([]byte(`
name: shorthand
on:
  push:
    branches: main
jobs:
  only:
    steps:
      - run: "true"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, []string(def.Triggers[domain.EventPush]))
}

func TestParse_BareTriggerKey(t *testing.T) {
	t.Parallel()

	def, err := workflow.Parse([]byte(`
name: bare
on:
  push:
jobs:
  only:
    steps:
      - run: "true"
`))
	require.NoError(t, err)

	branches, declared := def.Triggers[domain.EventPush]
	assert.True(t, declared)
	assert.Empty(t, branches)
}

func TestParse_DefinitionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "duplicate job names",
			yaml: `
name: dup
on:
  push:
jobs:
  build:
    steps:
      - run: "true"
  build:
    steps:
      - run: "false"
`,
			wantErr: errors.ErrDuplicateJobName,
		},
		{
			name: "no jobs",
			yaml: `
name: empty
on:
  push:
jobs: {}
`,
			wantErr: errors.ErrNoJobs,
		},
		{
			name: "empty step list",
			yaml: `
name: hollow
on:
  push:
jobs:
  build:
    steps: []
`,
			wantErr: errors.ErrEmptyJob,
		},
		{
			name: "unknown event kind",
			yaml: `
name: odd
on:
  release:
jobs:
  build:
    steps:
      - run: "true"
`,
			wantErr: errors.ErrUnknownEventKind,
		},
		{
			name: "unknown event kind in job constraint",
			yaml: `
name: odd-job
on:
  push:
jobs:
  build:
    when:
      schedule:
    steps:
      - run: "true"
`,
			wantErr: errors.ErrUnknownEventKind,
		},
		{
			name: "step with both run and uses",
			yaml: `
name: both
on:
  push:
jobs:
  build:
    steps:
      - run: "true"
        uses: checkout
`,
			wantErr: errors.ErrStepAction,
		},
		{
			name: "step with neither run nor uses",
			yaml: `
name: neither
on:
  push:
jobs:
  build:
    steps:
      - name: hollow step
`,
			wantErr: errors.ErrStepAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := workflow.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := workflow.Parse([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "workflow parse error")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := workflow.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWorkflowFileMissing)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ci.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ciWorkflow), 0o600))

	def, err := workflow.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CI", def.Name)
	assert.Len(t, def.Jobs, 3)
}
