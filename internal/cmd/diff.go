package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomas-polach/ecs-composex/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare two rendered templates",
		Long: `Compare two rendered CloudFormation templates semantically.

The comparison is YAML-aware (via dyff): key order and formatting differences
are ignored, only real changes are reported.

Exit codes:
  0  templates are semantically identical
  1  templates differ

Examples:
  composex diff cloudmap-old.yaml cloudmap-new.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, args []string) error {
	beforePath, afterPath := args[0], args[1]

	before, err := os.ReadFile(beforePath)
	if err != nil {
		return wrapRunError(fmt.Errorf("reading %s: %w", beforePath, err))
	}
	after, err := os.ReadFile(afterPath)
	if err != nil {
		return wrapRunError(fmt.Errorf("reading %s: %w", afterPath, err))
	}

	report, err := output.DiffTemplates(beforePath, before, afterPath, after, output.IsTTY())
	if err != nil {
		return wrapRunError(err)
	}

	if report == "" {
		output.Println(output.FormatCheckmark("templates are identical"))
		return nil
	}

	output.Println(report)
	err = fmt.Errorf("templates differ")
	return &ExitError{Code: ExitGeneralError, Err: err, Printed: true}
}
