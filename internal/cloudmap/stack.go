package cloudmap

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// VpcParameter is the template parameter the created namespaces bind their
// VPC to; the surrounding system passes its value in.
var VpcParameter = &cfn.Parameter{
	Title:       "VpcId",
	Type:        "AWS::EC2::VPC::Id",
	Description: "VPC to associate the private namespaces with",
}

// NamespaceResolver resolves an existing AWS Cloud Map namespace for a
// looked-up x-cloudmap declaration.
type NamespaceResolver interface {
	Resolve(ctx context.Context, ns *PrivateNamespace) (LookupProperties, error)
}

// LookupProperties are the attributes of a namespace resolved from AWS.
type LookupProperties struct {
	NamespaceID string
	ZoneID      string
	ZoneName    string
}

// Stack is the namespaces stack: the shared template all Cloud Map
// resources of one synthesis pass attach to.
type Stack struct {
	*xresource.Stack

	// Namespaces in declaration-name order.
	Namespaces []*PrivateNamespace
}

// Void reports whether the stack produced no resources and can be omitted
// from the rendered output.
func (s *Stack) Void() bool {
	return len(s.Template.Resources) == 0
}

// FindNamespace returns the namespace with the given declaration name.
func (s *Stack) FindNamespace(name string) (*PrivateNamespace, bool) {
	for _, ns := range s.Namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return nil, false
}

// BuildStack builds the namespaces stack from a project's x-cloudmap
// section: new namespaces are created in the template, looked-up ones are
// resolved through the resolver and recorded in the settings mapping table.
// The resolver may be nil when the project declares no lookups.
func BuildStack(ctx context.Context, project *compose.Project, settings *xresource.Settings, resolver NamespaceResolver) (*Stack, error) {
	stack := &Stack{Stack: xresource.NewStack(ModuleName, StackDescription)}

	names := make([]string, 0, len(project.Namespaces))
	for name := range project.Namespaces {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ns, err := NewPrivateNamespace(name, project.Namespaces[name])
		if err != nil {
			return nil, err
		}
		ns.Stack = stack.Stack
		stack.Namespaces = append(stack.Namespaces, ns)
	}

	if err := detectDuplicateZones(stack.Namespaces); err != nil {
		return nil, err
	}

	for _, ns := range stack.Namespaces {
		if ns.CfnResource {
			if err := defineNewNamespace(ns, stack.Template); err != nil {
				return nil, err
			}
		} else {
			if err := resolveLookup(ctx, ns, settings, resolver); err != nil {
				return nil, err
			}
		}
	}

	return stack, nil
}

// detectDuplicateZones rejects projects declaring the same zone name for
// more than one namespace.
func detectDuplicateZones(namespaces []*PrivateNamespace) error {
	seen := make(map[string]string, len(namespaces))
	for _, ns := range namespaces {
		if other, ok := seen[ns.ZoneName]; ok {
			return xerrors.NewValidationError(
				fmt.Sprintf("zone name %q is declared by both %s and %s", ns.ZoneName, other, ns.Name),
				"x-cloudmap",
				"every namespace needs a unique ZoneName",
			)
		}
		seen[ns.ZoneName] = ns.Name
	}
	return nil
}

// defineNewNamespace creates the PrivateDnsNamespace resource for a
// namespace declared without Lookup and registers its outputs.
func defineNewNamespace(ns *PrivateNamespace, template *cfn.Template) error {
	name := ns.ZoneName
	if props := ns.Definition.Properties; props != nil {
		if propName, ok := props["Name"].(string); ok && propName != "" {
			if propName != ns.ZoneName {
				return xerrors.NewValidationError(
					fmt.Sprintf("%s.%s - ZoneName and Properties.Name must be the same value when set",
						ns.ModuleName, ns.Name),
					fmt.Sprintf("x-cloudmap.%s", ns.Name),
					"remove Properties.Name or align it with ZoneName",
				)
			}
		}
		if _, ok := props["Vpc"]; ok {
			output.Warn("Vpc property was set, overriding to the execution VPC",
				"module", ns.ModuleName, "namespace", ns.Name)
		}
	}

	template.AddParameter(VpcParameter)
	resource := &cfn.PrivateDnsNamespace{
		Name: name,
		Vpc:  cfn.Ref(VpcParameter.Title),
	}
	if err := template.AddResource(ns.LogicalName, resource); err != nil {
		return err
	}

	ns.initNewOutputs()
	template.AddOutput(ns.LogicalName+NamespaceIDAttr, cfn.Output{
		Description: fmt.Sprintf("Private namespace id for %s", ns.ZoneName),
		Value:       cfn.Ref(ns.LogicalName),
	})
	return nil
}

// resolveLookup resolves an existing namespace through the AWS API and
// records its properties in the shared mapping table.
func resolveLookup(ctx context.Context, ns *PrivateNamespace, settings *xresource.Settings, resolver NamespaceResolver) error {
	if resolver == nil {
		return xerrors.Wrap(xerrors.ErrLookup,
			fmt.Sprintf("%s.%s - no resolver available for namespace lookup", ns.ModuleName, ns.Name))
	}

	properties, err := resolver.Resolve(ctx, ns)
	if err != nil {
		return err
	}
	output.Debug("resolved namespace",
		"namespace", ns.Name, "id", properties.NamespaceID, "zone", properties.ZoneName)

	settings.UpdateMapping(MappingsKey, cfn.Mapping{
		ns.LogicalName: {
			NamespaceIDAttr: properties.NamespaceID,
			ZoneNameAttr:    properties.ZoneName,
			ZoneIDAttr:      properties.ZoneID,
		},
	})
	ns.initLookupOutputs()
	return nil
}
