package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/synth"
)

// Vet command flags.
var vetFileFlags []string

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate x-cloudmap configuration",
		Long: `Statically validate the x-cloudmap configuration of one or more
compose files without calling AWS or rendering templates.

Checks namespace declarations (ZoneName, duplicate zones), settings-block
namespace references and ReturnValues keys against the known module outputs.

Examples:
  composex vet -f compose.yaml
  composex vet -f compose.yaml -f compose.prod.yaml`,
		RunE: runVet,
	}

	cmd.Flags().StringArrayVarP(&vetFileFlags, "file", "f", nil,
		"Compose file (can be repeated, later files override earlier ones)")

	return cmd
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string) error {
	if len(vetFileFlags) == 0 {
		return NewExitError(fmt.Errorf("no compose files given, pass at least one with --file"), ExitValidationError)
	}

	issues, err := synth.Vet(vetFileFlags)
	if err != nil {
		return wrapRunError(err)
	}

	errorCount := 0
	for _, issue := range issues {
		if issue.IsError() {
			errorCount++
			output.Error(issue.Message, "location", issue.Location)
		} else {
			output.Warn(issue.Message, "location", issue.Location)
		}
	}

	if errorCount > 0 {
		err := fmt.Errorf("%d validation error(s) found", errorCount)
		return &ExitError{Code: ExitValidationError, Err: err, Printed: true}
	}

	output.Println(output.FormatCheckmark("configuration is valid"))
	return nil
}
