package workflow

import (
	"slices"

	"github.com/conveyorci/conveyor/internal/domain"
)

// ShouldRun decides whether an event launches a run of the workflow at all.
// It is pure evaluation: a non-matching event is a no-op, not an error.
//
// The event is admitted only if the workflow declares a trigger rule for the
// event's kind and the event's branch matches one of the rule's patterns.
// A workflow with no trigger rules never runs.
func ShouldRun(event domain.Event, def *domain.WorkflowDefinition) bool {
	return matchRules(event, def.Triggers)
}

// JobShouldRun decides whether one job of an admitted run participates.
// A job without constraint rules runs for every admitted event; a job whose
// rules reject the event is reported skipped without launching any step.
func JobShouldRun(event domain.Event, job *domain.JobDefinition) bool {
	if len(job.When) == 0 {
		return true
	}
	return matchRules(event, job.When)
}

// matchRules applies a rule set to an event. A rule with an empty branch
// list admits any branch for its event kind; otherwise the branch must match
// one of the declared patterns exactly.
func matchRules(event domain.Event, rules domain.TriggerRules) bool {
	branches, declared := rules[event.Kind]
	if !declared {
		return false
	}
	if len(branches) == 0 {
		return true
	}
	return slices.Contains(branches, event.Branch)
}
