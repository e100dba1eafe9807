package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conveyorci/conveyor/internal/engine"
)

func TestBuildEnv_StepOverridesWorkflowOverridesHost(t *testing.T) {
	host := []string{"PATH=/usr/bin", "RUST_LOG=error", "CARGO_TERM_COLOR=never"}
	workflowEnv := map[string]string{"RUST_LOG": "info", "CI": "true"}
	stepEnv := map[string]string{"RUST_LOG": "debug"}

	env := engine.BuildEnv(host, workflowEnv, stepEnv).Slice()

	assert.Equal(t, []string{
		"PATH=/usr/bin",
		"RUST_LOG=error",
		"CARGO_TERM_COLOR=never",
		"CI=true",
		"RUST_LOG=info",
		"RUST_LOG=debug",
	}, env)
}

func TestBuildEnv_NoOverrides(t *testing.T) {
	host := []string{"HOME=/home/ci"}

	env := engine.BuildEnv(host, nil, nil).Slice()

	assert.Equal(t, []string{"HOME=/home/ci"}, env)
}

func TestBuildEnv_DeterministicOrder(t *testing.T) {
	workflowEnv := map[string]string{"B": "2", "A": "1", "C": "3"}

	first := engine.BuildEnv(nil, workflowEnv, nil).Slice()
	second := engine.BuildEnv(nil, workflowEnv, nil).Slice()

	assert.Equal(t, []string{"A=1", "B=2", "C=3"}, first)
	assert.Equal(t, first, second)
}

func TestEnvVars_AddEnv(t *testing.T) {
	var env engine.EnvVars
	env.AddEnv("FOO", "bar")
	env.AddEnv("BAZ", "qux")

	assert.Equal(t, []string{"FOO=bar", "BAZ=qux"}, env.Slice())
}
