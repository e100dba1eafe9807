package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conveyorci/conveyor/internal/config"
	"github.com/conveyorci/conveyor/internal/constants"
	"github.com/conveyorci/conveyor/internal/ctxutil"
	"github.com/conveyorci/conveyor/internal/domain"
	"github.com/conveyorci/conveyor/internal/engine"
	"github.com/conveyorci/conveyor/internal/errors"
	"github.com/conveyorci/conveyor/internal/logstore"
	"github.com/conveyorci/conveyor/internal/tui"
	"github.com/conveyorci/conveyor/internal/workflow"
)

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command) {
	root.AddCommand(newRunCmd())
}

// runOptions holds the run command's flag values.
type runOptions struct {
	event   string
	branch  string
	workDir string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [workflow-file]",
		Short: "Execute a workflow for an event",
		Long: `Execute the workflow definition against the given event.

The workflow's triggers are evaluated first: if they do not admit the
event, the run is skipped without launching anything and the command
exits successfully. Otherwise every matching job runs in parallel, with
the steps inside each job running in order.

The command exits non-zero when any job fails.

Examples:
  conveyor run
  conveyor run ci.yaml --event push --branch main
  conveyor run ci.yaml --event pull_request --branch develop --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := constants.DefaultWorkflowFileName
			if len(args) > 0 {
				path = args[0]
			}
			return runRun(cmd.Context(), cmd, opts, path, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&opts.event, "event", "e", string(domain.EventPush),
		"event kind triggering the run (push|pull_request)")
	cmd.Flags().StringVarP(&opts.branch, "branch", "b", "",
		"branch the event refers to")
	cmd.Flags().StringVarP(&opts.workDir, "workdir", "w", "",
		"directory steps execute in (defaults to the current directory)")

	return cmd
}

func runRun(ctx context.Context, cmd *cobra.Command, opts *runOptions, path string, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	event := domain.Event{Kind: domain.EventKind(opts.event), Branch: opts.branch}
	if !domain.KnownEventKind(event.Kind) {
		err := errors.Wrapf(errors.ErrUnknownEventKind, "%q", opts.event)
		out.Error(err)
		return err
	}

	def, err := workflow.Load(path)
	if err != nil {
		out.Error(err)
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}
	if opts.workDir != "" {
		cfg.Engine.WorkDir = opts.workDir
	}

	runsDir := cfg.Logs.Dir
	if runsDir == "" {
		runsDir, err = config.DefaultRunsDir()
		if err != nil {
			return errors.Wrap(err, "failed to resolve runs directory")
		}
	}

	eng := engine.New(cfg, logstore.NewStore(runsDir), &engine.DefaultCommandRunner{},
		logger, os.Environ())

	result, err := eng.RunWorkflow(ctx, def, event)
	if err != nil {
		return err
	}

	if outputFormat == OutputJSON {
		if err := out.JSON(result); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, tui.RenderRunSummary(result)); err != nil {
			return err
		}
	}

	if result.Failed() {
		return errors.Wrapf(errors.ErrRunFailed, "run %s", result.RunID)
	}
	return nil
}
