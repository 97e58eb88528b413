// Package compose parses compose-like project files: the services map, the
// top-level x-cloudmap namespace declarations, and the x- module sections
// that declare discoverable resources.
package compose

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// xCloudMapKey is the top-level section declaring Cloud Map namespaces.
const xCloudMapKey = "x-cloudmap"

// xPrefix marks extension sections; every x- section other than x-cloudmap
// is treated as a resource module (x-rds, x-docdb, ...).
const xPrefix = "x-"

// Project is a parsed compose project.
type Project struct {
	// Name is derived from the first file loaded.
	Name string

	Services map[string]Service

	// Namespaces are the x-cloudmap declarations, keyed by namespace name.
	Namespaces map[string]NamespaceDefinition

	// Modules maps module name (the x- section without prefix) to its named
	// resource definitions.
	Modules map[string]map[string]ResourceDefinition
}

// Service is a compose service. Only the fields the synthesis pass consumes
// are modeled.
type Service struct {
	Image       string            `yaml:"image"`
	Environment map[string]string `yaml:"-"`
}

// NamespaceDefinition declares one Cloud Map private namespace.
type NamespaceDefinition struct {
	ZoneName   string           `yaml:"ZoneName"`
	Lookup     *NamespaceLookup `yaml:"Lookup"`
	Properties map[string]any   `yaml:"Properties"`
}

// IsLookup reports whether the namespace is resolved from an existing AWS
// namespace instead of created in the template.
func (d NamespaceDefinition) IsLookup() bool {
	return d.Lookup != nil && !d.Lookup.disabled
}

// NamespaceLookup accepts either a boolean (discover by zone name) or a
// mapping with an explicit NamespaceId.
type NamespaceLookup struct {
	NamespaceID string `yaml:"NamespaceId"`

	// disabled records "Lookup: false", which behaves as if the key were
	// absent.
	disabled bool
}

// UnmarshalYAML implements yaml.Unmarshaler for the bool-or-mapping forms.
func (l *NamespaceLookup) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("unsupported Lookup value: %w", err)
		}
		l.disabled = !enabled
		return nil
	case yaml.MappingNode:
		type plain NamespaceLookup
		return node.Decode((*plain)(l))
	default:
		return fmt.Errorf("unsupported Lookup node kind: %v", node.Kind)
	}
}

// ResourceDefinition is one named resource of an x- module section.
type ResourceDefinition struct {
	Properties map[string]any    `yaml:"Properties"`
	Lookup     map[string]any    `yaml:"Lookup"`
	CloudMap   *CloudMapSettings `yaml:"x-cloudmap"`
}

// IsLookup reports whether the resource is looked up externally rather than
// created in the current execution.
func (d ResourceDefinition) IsLookup() bool {
	return len(d.Lookup) > 0
}

// Load reads and merges one or more compose files into a Project. Later
// files override earlier entries key by key, matching compose override
// semantics at the map level this tool consumes.
func Load(paths ...string) (*Project, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no compose files given")
	}

	project := &Project{
		Services:   make(map[string]Service),
		Namespaces: make(map[string]NamespaceDefinition),
		Modules:    make(map[string]map[string]ResourceDefinition),
	}

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := project.merge(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if i == 0 {
			project.Name = projectName(path)
		}
	}

	return project, nil
}

// Parse parses a single compose document from memory.
func Parse(data []byte) (*Project, error) {
	project := &Project{
		Services:   make(map[string]Service),
		Namespaces: make(map[string]NamespaceDefinition),
		Modules:    make(map[string]map[string]ResourceDefinition),
	}
	if err := project.merge(data); err != nil {
		return nil, err
	}
	return project, nil
}

func (p *Project) merge(data []byte) error {
	var top map[string]yaml.Node
	if err := yaml.Unmarshal(data, &top); err != nil {
		return err
	}

	for key, node := range top {
		node := node
		switch {
		case key == "services":
			var services map[string]Service
			if err := node.Decode(&services); err != nil {
				return fmt.Errorf("services: %w", err)
			}
			for name, svc := range services {
				p.Services[name] = svc
			}
		case key == xCloudMapKey:
			var namespaces map[string]NamespaceDefinition
			if err := node.Decode(&namespaces); err != nil {
				return fmt.Errorf("%s: %w", xCloudMapKey, err)
			}
			for name, ns := range namespaces {
				p.Namespaces[name] = ns
			}
		case strings.HasPrefix(key, xPrefix):
			module := strings.TrimPrefix(key, xPrefix)
			var resources map[string]ResourceDefinition
			if err := node.Decode(&resources); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			if p.Modules[module] == nil {
				p.Modules[module] = make(map[string]ResourceDefinition)
			}
			for name, res := range resources {
				p.Modules[module][name] = res
			}
		}
	}
	return nil
}

// ModuleNames returns the declared module names in sorted order.
func (p *Project) ModuleNames() []string {
	names := make([]string, 0, len(p.Modules))
	for name := range p.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// projectName derives a project name from a compose file path.
func projectName(path string) string {
	trimmed := strings.TrimSuffix(path, ".yaml")
	trimmed = strings.TrimSuffix(trimmed, ".yml")
	if idx := strings.LastIndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
