// Package workflow loads, validates, and evaluates declarative workflow
// definitions.
//
// A workflow file names its triggers, a workflow-wide environment mapping,
// and a set of jobs. Jobs execute in parallel; the steps of a job execute
// serially. The file shape:
//
//	name: CI
//	on:
//	  push:
//	    branches: [main]
//	  pull_request:
//	    branches: [main]
//	env:
//	  CARGO_TERM_COLOR: always
//	jobs:
//	  build-and-test:
//	    runs-on: ubuntu-latest
//	    steps:
//	      - uses: checkout
//	      - name: Build
//	        run: cargo build --verbose
package workflow

import (
	stderrors "errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/errors"
)

// fileDef is the structural representation of the workflow file.
// It is compiled into a domain.WorkflowDefinition after validation.
type fileDef struct {
	Name string            `yaml:"name"`
	On   triggerSet        `yaml:"on"`
	Env  map[string]string `yaml:"env"`
	Jobs jobList           `yaml:"jobs"`
}

// triggerSet maps event kind to its trigger rule.
type triggerSet map[string]triggerRule

// triggerRule constrains one event kind to a set of branches.
// An empty branch list admits any branch for that kind.
type triggerRule struct {
	Branches StringList `yaml:"branches"`
}

// UnmarshalYAML accepts both the full rule form and a bare key with no body
// (e.g. "push:" on its own line).
func (r *triggerRule) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*r = triggerRule{}
		return nil
	}
	type plain triggerRule
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = triggerRule(p)
	return nil
}

// jobList preserves the declaration order of the jobs mapping and detects
// duplicate job names, which yaml mappings would otherwise silently allow
// when walked as nodes.
type jobList []jobDef

type jobDef struct {
	Name   string     `yaml:"-"`
	RunsOn string     `yaml:"runs-on"`
	When   triggerSet `yaml:"when"`
	Steps  []stepDef  `yaml:"steps"`
}

type stepDef struct {
	Name            string            `yaml:"name"`
	Run             string            `yaml:"run"`
	Uses            string            `yaml:"uses"`
	ContinueOnError bool              `yaml:"continue-on-error"`
	Env             map[string]string `yaml:"env"`
}

// UnmarshalYAML decodes the jobs mapping while preserving key order.
func (l *jobList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: jobs must be a mapping", errors.ErrWorkflowParse)
	}

	seen := make(map[string]struct{}, len(value.Content)/2)
	jobs := make(jobList, 0, len(value.Content)/2)

	// Mapping node content alternates key, value.
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return err
		}
		if _, dup := seen[name]; dup {
			return errors.Wrapf(errors.ErrDuplicateJobName, "job %q", name)
		}
		seen[name] = struct{}{}

		var job jobDef
		if err := valNode.Decode(&job); err != nil {
			return err
		}
		job.Name = name
		jobs = append(jobs, job)
	}

	*l = jobs
	return nil
}

// StringList accepts either a single string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	var single string
	if err := value.Decode(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var many []string
	if err := value.Decode(&many); err == nil {
		*s = many
		return nil
	}

	return stderrors.New("expected a string or a list of strings")
}

// compile converts the file representation into the immutable domain form.
// The definition must already have passed validate.
func (f *fileDef) compile() *domain.WorkflowDefinition {
	def := &domain.WorkflowDefinition{
		Name:     f.Name,
		Triggers: compileTriggers(f.On),
		Env:      f.Env,
		Jobs:     make([]domain.JobDefinition, 0, len(f.Jobs)),
	}

	for _, j := range f.Jobs {
		job := domain.JobDefinition{
			Name:   j.Name,
			Target: j.RunsOn,
			When:   compileTriggers(j.When),
			Steps:  make([]domain.StepDefinition, 0, len(j.Steps)),
		}
		for _, s := range j.Steps {
			job.Steps = append(job.Steps, domain.StepDefinition{
				Name:            s.Name,
				Run:             s.Run,
				Uses:            s.Uses,
				ContinueOnError: s.ContinueOnError,
				Env:             s.Env,
			})
		}
		def.Jobs = append(def.Jobs, job)
	}

	return def
}

// compileTriggers converts the yaml trigger set into domain trigger rules.
func compileTriggers(set triggerSet) domain.TriggerRules {
	if set == nil {
		return nil
	}
	rules := make(domain.TriggerRules, len(set))
	for kind, rule := range set {
		rules[domain.EventKind(kind)] = rule.Branches
	}
	return rules
}
