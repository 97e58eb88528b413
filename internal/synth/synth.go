// Package synth runs the synthesis pass: it loads a compose project, builds
// the Cloud Map namespaces stack and registers every x- resource carrying
// x-cloudmap settings into its namespace.
package synth

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomas-polach/ecs-composex/internal/cloudmap"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// Options configure a synthesis run.
type Options struct {
	// ComposePaths are the compose files to load, in override order.
	ComposePaths []string

	// OutputPath is the file or directory to write to; empty means stdout.
	OutputPath string

	// Format selects the template serialization.
	Format output.Format

	// Region and Profile override the ambient AWS configuration for
	// namespace lookups.
	Region  string
	Profile string

	// Resolver overrides the AWS-backed namespace resolver. When nil and the
	// project declares namespace lookups, a Cloud Map client is created from
	// the ambient AWS configuration.
	Resolver cloudmap.NamespaceResolver
}

// Validate checks the options before a run.
func (o *Options) Validate() error {
	if len(o.ComposePaths) == 0 {
		return xerrors.NewValidationError(
			"no compose files given",
			"",
			"pass at least one compose file with --file",
		)
	}
	if o.Format == "" {
		o.Format = output.FormatYAML
	}
	if !o.Format.IsValid() {
		return xerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", o.Format),
			"",
			fmt.Sprintf("valid formats: %v", output.ValidFormats()),
		)
	}
	return nil
}

// Registration records one service registration performed during the run.
type Registration struct {
	Namespace    string
	Module       string
	Resource     string
	ServiceTitle string
}

// Result is the outcome of a synthesis run.
type Result struct {
	Project       *compose.Project
	Stack         *cloudmap.Stack
	Settings      *xresource.Settings
	Registrations []Registration
}

// Run executes the synthesis pass.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	project, err := compose.Load(opts.ComposePaths...)
	if err != nil {
		return nil, err
	}
	output.Debug("project loaded",
		"name", project.Name, "namespaces", len(project.Namespaces), "modules", len(project.Modules))

	settings := xresource.NewSettings()
	resolver, err := buildResolver(ctx, project, opts)
	if err != nil {
		return nil, err
	}

	var stack *cloudmap.Stack
	err = output.RunWithSpinner(ctx, func() error {
		var buildErr error
		stack, buildErr = cloudmap.BuildStack(ctx, project, settings, resolver)
		return buildErr
	}, output.WithTitle("Building Cloud Map namespaces..."))
	if err != nil {
		return nil, err
	}

	result := &Result{
		Project:  project,
		Stack:    stack,
		Settings: settings,
	}

	for _, moduleName := range project.ModuleNames() {
		module := ModuleFor(moduleName)
		resources := project.Modules[moduleName]

		names := make([]string, 0, len(resources))
		for name := range resources {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			def := resources[name]
			if def.CloudMap == nil {
				continue
			}
			registration, err := register(stack, module, name, def, settings)
			if err != nil {
				return nil, err
			}
			if registration != nil {
				result.Registrations = append(result.Registrations, *registration)
			}
		}
	}

	return result, nil
}

// register attaches one resource to its target namespace. A settings block
// naming an undeclared namespace is a configuration error.
func register(stack *cloudmap.Stack, module ModuleDefinition, name string, def compose.ResourceDefinition, settings *xresource.Settings) (*Registration, error) {
	ns, ok := stack.FindNamespace(def.CloudMap.Namespace)
	if !ok {
		return nil, xerrors.NewValidationError(
			fmt.Sprintf("%s.%s - namespace %q is not declared under x-cloudmap",
				module.Name, name, def.CloudMap.Namespace),
			fmt.Sprintf("x-%s.%s", module.Name, name),
			"declare the namespace in the top-level x-cloudmap section",
		)
	}

	r := BuildResource(module, name, def, settings)
	serviceTitle := cloudmap.ServiceTitle(r)
	before := stack.Template.HasResource(serviceTitle)

	if err := cloudmap.RegisterResource(ns, r, def.CloudMap, settings); err != nil {
		return nil, err
	}
	if before || !stack.Template.HasResource(serviceTitle) {
		// Skipped: mismatch, ineligibility or already registered.
		return nil, nil
	}

	output.Info("registered resource",
		"namespace", ns.Name, "module", module.Name, "resource", name, "service", serviceTitle)
	return &Registration{
		Namespace:    ns.Name,
		Module:       module.Name,
		Resource:     name,
		ServiceTitle: serviceTitle,
	}, nil
}

// buildResolver returns the namespace resolver for the run, creating an AWS
// client only when the project actually declares namespace lookups.
func buildResolver(ctx context.Context, project *compose.Project, opts *Options) (cloudmap.NamespaceResolver, error) {
	if opts.Resolver != nil {
		return opts.Resolver, nil
	}
	if !hasNamespaceLookups(project) {
		return nil, nil
	}
	client, err := cloudmap.NewClient(ctx, opts.Region, opts.Profile)
	if err != nil {
		return nil, err
	}
	return cloudmap.NewAWSResolver(client), nil
}

func hasNamespaceLookups(project *compose.Project) bool {
	for _, ns := range project.Namespaces {
		if ns.IsLookup() {
			return true
		}
	}
	return false
}
