package workflow

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/errors"
)

// Parse decodes and validates a workflow definition from raw file contents.
// A definition error here is fatal to the entire run: nothing executes.
func Parse(contents []byte) (*domain.WorkflowDefinition, error) {
	var f fileDef
	if err := yaml.Unmarshal(contents, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrWorkflowParse.Error())
	}

	if err := validate(&f); err != nil {
		return nil, err
	}

	return f.compile(), nil
}

// Load reads and parses the workflow definition at path.
func Load(path string) (*domain.WorkflowDefinition, error) {
	contents, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrWorkflowFileMissing, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read workflow file %s", path)
	}
	return Parse(contents)
}
