package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/synth"
)

// Render command flags.
var (
	renderFileFlags []string
	renderOutFlag   string
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render Cloud Map templates from compose files",
		Long: `Render the Cloud Map namespaces CloudFormation template from one or
more compose files.

Namespaces declared under the top-level x-cloudmap section are either created
in the template or resolved from AWS when they carry a Lookup block. Every
resource with an x-cloudmap settings block gets a discovery Service/Instance
pair registered into its namespace.

Examples:
  # Render to stdout as YAML
  composex render -f compose.yaml

  # Render JSON to a file
  composex render -f compose.yaml -o json --out cloudmap.json

  # One file per stack, plus stack parameters
  composex render -f compose.yaml -f compose.prod.yaml -o dir --out ./stacks`,
		RunE: runRender,
	}

	cmd.Flags().StringArrayVarP(&renderFileFlags, "file", "f", nil,
		"Compose file (can be repeated, later files override earlier ones)")
	cmd.Flags().StringVar(&renderOutFlag, "out", "",
		"Output file or directory (default: stdout)")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	opts := &synth.Options{
		ComposePaths: renderFileFlags,
		OutputPath:   renderOutFlag,
		Format:       output.ParseFormat(GetOutputFormat()),
		Region:       GetRegion(),
		Profile:      GetProfile(),
	}

	result, err := synth.Run(cmd.Context(), opts)
	if err != nil {
		return wrapRunError(err)
	}

	for _, ns := range result.Stack.Namespaces {
		status := output.StatusCreated
		if !ns.CfnResource {
			status = output.StatusLookup
		}
		output.Println(output.FormatResourceLine(result.Stack.Title, ns.LogicalName, status))
	}
	for _, registration := range result.Registrations {
		output.Println(output.FormatResourceLine(result.Stack.Title, registration.ServiceTitle, output.StatusCreated))
	}

	if err := synth.Write(result, opts.Format, opts.OutputPath); err != nil {
		return wrapRunError(err)
	}

	if !result.Stack.Void() {
		output.Println(output.FormatCheckmark(fmt.Sprintf("%d namespace(s), %d registration(s)",
			len(result.Stack.Namespaces), len(result.Registrations))))
	}
	return nil
}
