package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conveyorci/conveyor/internal/constants"
	"github.com/conveyorci/conveyor/internal/ctxutil"
	"github.com/conveyorci/conveyor/internal/tui"
	"github.com/conveyorci/conveyor/internal/workflow"
)

// AddValidateCommand adds the validate command to the root command.
func AddValidateCommand(root *cobra.Command) {
	root.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [workflow-file]",
		Short: "Parse and validate a workflow definition",
		Long: `Parse the workflow definition and report whether it is valid,
without executing anything.

Examples:
  conveyor validate
  conveyor validate ci.yaml
  conveyor validate ci.yaml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := constants.DefaultWorkflowFileName
			if len(args) > 0 {
				path = args[0]
			}
			return runValidate(cmd.Context(), cmd, path, os.Stdout)
		},
	}
}

func runValidate(ctx context.Context, cmd *cobra.Command, path string, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	def, err := workflow.Load(path)
	if err != nil {
		out.Error(err)
		return err
	}

	steps := 0
	for i := range def.Jobs {
		steps += len(def.Jobs[i].Steps)
	}

	if outputFormat == OutputJSON {
		return out.JSON(map[string]any{
			"valid":    true,
			"workflow": def.Name,
			"jobs":     len(def.Jobs),
			"steps":    steps,
		})
	}

	out.Success(fmt.Sprintf("%s is valid (%d jobs, %d steps)", path, len(def.Jobs), steps))
	return nil
}
