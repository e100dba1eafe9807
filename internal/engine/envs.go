package engine

import (
	"fmt"
	"sort"
)

// EnvVars is a process environment in "KEY=value" form.
type EnvVars []string

// Slice returns the EnvVars as a []string slice.
func (ev EnvVars) Slice() []string {
	return ev
}

// AddEnv appends a key=value entry.
func (ev *EnvVars) AddEnv(key, value string) {
	*ev = append(*ev, fmt.Sprintf("%s=%s", key, value))
}

// BuildEnv assembles the effective environment for one step: the host
// environment, then the workflow mapping, then the step-local overrides.
// Later entries win on conflict (the OS keeps the last occurrence of a
// duplicated key), so step keys override workflow keys which override host
// keys. Declared mappings are appended in sorted key order so that two runs
// of the same definition produce an identical environment layout.
func BuildEnv(hostEnv []string, workflowEnv, stepEnv map[string]string) EnvVars {
	env := make(EnvVars, 0, len(hostEnv)+len(workflowEnv)+len(stepEnv))
	env = append(env, hostEnv...)
	appendSorted(&env, workflowEnv)
	appendSorted(&env, stepEnv)
	return env
}

// appendSorted appends a mapping to env in sorted key order.
func appendSorted(env *EnvVars, vars map[string]string) {
	if len(vars) == 0 {
		return
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env.AddEnv(k, vars[k])
	}
}
