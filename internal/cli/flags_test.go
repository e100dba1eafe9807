package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conveyorci/conveyor/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "run failed", err: errors.ErrRunFailed, want: ExitError},
		{name: "wrapped run failed", err: errors.Wrap(errors.ErrRunFailed, "run abc"), want: ExitError},
		{name: "invalid output format", err: errors.ErrInvalidOutputFormat, want: ExitInvalidInput},
		{name: "unknown event kind", err: errors.Wrapf(errors.ErrUnknownEventKind, "%q", "cron"), want: ExitInvalidInput},
		{name: "unknown flag", err: stderrors.New("unknown flag: --frob"), want: ExitInvalidInput},
		{name: "mutually exclusive flags", err: stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"), want: ExitInvalidInput},
		{name: "generic error", err: stderrors.New("boom"), want: ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
