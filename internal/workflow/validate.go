package workflow

import (
	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/errors"
)

// validate rejects malformed definitions before any job starts (fail fast,
// no partial run). Duplicate job names are already caught during decoding.
func validate(f *fileDef) error {
	if len(f.Jobs) == 0 {
		return errors.Wrap(errors.ErrNoJobs, errors.ErrDefinitionInvalid.Error())
	}

	if err := validateTriggerKinds(f.On); err != nil {
		return err
	}

	for i := range f.Jobs {
		if err := validateJob(&f.Jobs[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateJob checks one job's constraint rules and step declarations.
func validateJob(job *jobDef) error {
	if len(job.Steps) == 0 {
		return errors.Wrapf(errors.ErrEmptyJob, "job %q", job.Name)
	}

	if err := validateTriggerKinds(job.When); err != nil {
		return errors.Wrapf(err, "job %q", job.Name)
	}

	for i := range job.Steps {
		step := &job.Steps[i]
		hasRun := step.Run != ""
		hasUses := step.Uses != ""
		if hasRun == hasUses {
			return errors.Wrapf(errors.ErrStepAction, "job %q step %d", job.Name, i+1)
		}
	}

	return nil
}

// validateTriggerKinds rejects trigger rules naming unknown event kinds.
func validateTriggerKinds(set triggerSet) error {
	for kind := range set {
		if !domain.KnownEventKind(domain.EventKind(kind)) {
			return errors.Wrapf(errors.ErrUnknownEventKind, "%q", kind)
		}
	}
	return nil
}
