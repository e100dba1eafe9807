package domain

// TriggerRules maps an event kind to the branch patterns that admit it.
// A workflow with no rule for an event kind never runs for that kind.
type TriggerRules map[EventKind][]string

// WorkflowDefinition is the parsed, immutable form of one workflow file.
// It is loaded once at run start and read-only thereafter; the engine never
// mutates it and shares it freely across concurrent job runners.
type WorkflowDefinition struct {
	// Name is the workflow's display name.
	Name string `json:"name"`

	// Triggers are the event admission rules consulted before any job starts.
	Triggers TriggerRules `json:"triggers"`

	// Env is the workflow-wide environment mapping inherited by every step.
	Env map[string]string `json:"env,omitempty"`

	// Jobs are the declared jobs in file order. Names are unique; all jobs
	// are parallel siblings with no inter-job dependencies.
	Jobs []JobDefinition `json:"jobs"`
}

// Job returns the job with the given name, or nil if none exists.
func (w *WorkflowDefinition) Job(name string) *JobDefinition {
	for i := range w.Jobs {
		if w.Jobs[i].Name == name {
			return &w.Jobs[i]
		}
	}
	return nil
}

// JobDefinition is one named job: an ordered sequence of steps executed
// strictly sequentially on its own execution unit.
type JobDefinition struct {
	// Name is unique within the workflow.
	Name string `json:"name"`

	// Target is an opaque execution target descriptor (e.g. a platform
	// label). The engine records it but does not interpret it.
	Target string `json:"target,omitempty"`

	// When optionally constrains the job to a subset of the workflow's
	// events. A job whose rules reject the event is reported skipped.
	// Nil means the job runs for every admitted event.
	When TriggerRules `json:"when,omitempty"`

	// Steps are executed in declared order.
	Steps []StepDefinition `json:"steps"`
}

// StepDefinition is a single executable action of a job.
type StepDefinition struct {
	// Name is optional; unnamed steps are identified by the command or
	// action reference in output.
	Name string `json:"name,omitempty"`

	// Run is an inline command string interpreted by the configured shell.
	// Exactly one of Run and Uses is set.
	Run string `json:"run,omitempty"`

	// Uses references a pre-built action by name, resolved through the
	// engine's action table. Opaque to the core beyond that lookup.
	Uses string `json:"uses,omitempty"`

	// ContinueOnError tolerates a failure of this step: the job continues
	// and the failure never escalates past the step. Default false.
	ContinueOnError bool `json:"continue_on_error,omitempty"`

	// Env holds step-local environment overrides. Step keys win over
	// workflow keys on conflict.
	Env map[string]string `json:"env,omitempty"`
}

// DisplayName returns the step's name, falling back to its command or
// action reference for unnamed steps.
func (s *StepDefinition) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Uses != "" {
		return s.Uses
	}
	return s.Run
}
