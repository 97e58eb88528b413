package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomas-polach/ecs-composex/internal/output"
)

// Write serializes the result's stack template to the given path. An empty
// path writes to stdout. A void stack produces no output at all.
func Write(result *Result, format output.Format, path string) error {
	if result.Stack.Void() {
		output.Info("no Cloud Map resources generated, nothing to write")
		return nil
	}

	if format == output.FormatDir {
		return writeDir(result, path)
	}

	data, err := serialize(result, format)
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		output.Print(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	output.Info("template written", "path", path)
	return nil
}

// writeDir writes one template file per stack plus a parameters file when
// the stack takes inputs.
func writeDir(result *Result, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	stack := result.Stack
	data, err := serialize(result, output.FormatYAML)
	if err != nil {
		return err
	}
	templatePath := filepath.Join(dir, stack.Title+".yaml")
	if err := os.WriteFile(templatePath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", templatePath, err)
	}
	output.Info("template written", "path", templatePath)

	if len(stack.Parameters) > 0 {
		params, err := json.MarshalIndent(stack.Parameters, "", "  ")
		if err != nil {
			return err
		}
		paramsPath := filepath.Join(dir, stack.Title+".params.json")
		if err := os.WriteFile(paramsPath, append(params, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", paramsPath, err)
		}
		output.Info("stack parameters written", "path", paramsPath)
	}
	return nil
}

func serialize(result *Result, format output.Format) ([]byte, error) {
	if format == output.FormatJSON {
		data, err := result.Stack.Template.JSON()
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return result.Stack.Template.YAML()
}
