package synth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomas-polach/ecs-composex/internal/compose"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one finding of a vet pass.
type Issue struct {
	Severity string
	Location string
	Message  string
}

// IsError reports whether the issue blocks rendering.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// Vet statically checks a project's x-cloudmap configuration without
// touching AWS: namespace declarations, settings-block references and
// ReturnValues keys are verified against the module registry.
func Vet(paths []string) ([]Issue, error) {
	project, err := compose.Load(paths...)
	if err != nil {
		return nil, err
	}
	return vetProject(project), nil
}

func vetProject(project *compose.Project) []Issue {
	var issues []Issue

	names := make([]string, 0, len(project.Namespaces))
	for name := range project.Namespaces {
		names = append(names, name)
	}
	sort.Strings(names)

	zones := make(map[string]string, len(names))
	for _, name := range names {
		ns := project.Namespaces[name]
		location := "x-cloudmap." + name

		if ns.ZoneName == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Location: location,
				Message:  "ZoneName is required",
			})
			continue
		}
		if other, ok := zones[ns.ZoneName]; ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Location: location,
				Message:  fmt.Sprintf("zone name %q already declared by %s", ns.ZoneName, other),
			})
		}
		zones[ns.ZoneName] = name

		if props := ns.Properties; props != nil {
			if propName, ok := props["Name"].(string); ok && propName != "" && propName != ns.ZoneName {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Location: location,
					Message:  "Properties.Name must match ZoneName when both are set",
				})
			}
		}
	}

	for _, moduleName := range project.ModuleNames() {
		module := ModuleFor(moduleName)
		resources := project.Modules[moduleName]

		resourceNames := make([]string, 0, len(resources))
		for name := range resources {
			resourceNames = append(resourceNames, name)
		}
		sort.Strings(resourceNames)

		for _, name := range resourceNames {
			def := resources[name]
			if def.CloudMap == nil {
				continue
			}
			issues = append(issues, vetSettings(project, module, name, def.CloudMap)...)
		}
	}

	return issues
}

func vetSettings(project *compose.Project, module ModuleDefinition, name string, settings *compose.CloudMapSettings) []Issue {
	var issues []Issue
	location := fmt.Sprintf("x-%s.%s.x-cloudmap", module.Name, name)

	if settings.Namespace == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Location: location,
			Message:  "Namespace is required",
		})
	} else if _, ok := project.Namespaces[settings.Namespace]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Location: location,
			Message:  fmt.Sprintf("namespace %q is not declared under x-cloudmap", settings.Namespace),
		})
	}

	valid := make(map[string]bool, len(module.Attributes)*2)
	for _, attr := range module.Attributes {
		valid[attr.Title] = true
		if attr.ReturnValue != "" {
			valid[attr.ReturnValue] = true
		}
	}
	keys := make([]string, 0, len(settings.ReturnValues))
	for key := range settings.ReturnValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !valid[key] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Location: location,
				Message:  fmt.Sprintf("ReturnValues key %q is not an output of module %s", key, module.Name),
			})
		}
	}

	if settings.DNSSettings != nil && !module.DNSSupported {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Location: location,
			Message:  fmt.Sprintf("module %s does not support DnsSettings, the block will be ignored", module.Name),
		})
	}

	attrs := make([]string, 0, len(settings.AdditionalAttributes))
	for key := range settings.AdditionalAttributes {
		attrs = append(attrs, key)
	}
	sort.Strings(attrs)
	for _, key := range attrs {
		if strings.HasPrefix(key, "AWS_") {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Location: location,
				Message:  fmt.Sprintf("AdditionalAttributes key %q uses the reserved AWS_ prefix and will be dropped", key),
			})
		}
	}

	return issues
}
