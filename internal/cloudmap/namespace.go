package cloudmap

import (
	"fmt"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// PrivateNamespace is one x-cloudmap namespace declaration: either a
// PrivateDnsNamespace created in the stack template or an existing AWS
// namespace resolved through the Cloud Map API.
type PrivateNamespace struct {
	*xresource.Resource

	ZoneName   string
	Definition compose.NamespaceDefinition

	// Stack is the namespaces stack every generated Service/Instance pair
	// is attached to.
	Stack *xresource.Stack
}

// NewPrivateNamespace builds a namespace from its compose declaration.
func NewPrivateNamespace(name string, definition compose.NamespaceDefinition) (*PrivateNamespace, error) {
	if definition.ZoneName == "" {
		return nil, xerrors.NewValidationError(
			fmt.Sprintf("%s.%s - ZoneName is required", ModuleName, name),
			fmt.Sprintf("x-cloudmap.%s", name),
			"set ZoneName to the private DNS zone of the namespace",
		)
	}

	resource := xresource.NewResource(name, ModuleName, xresource.LogicalName(name))
	resource.CfnResource = !definition.IsLookup()
	resource.MappingKey = MappingsKey

	return &PrivateNamespace{
		Resource:   resource,
		ZoneName:   definition.ZoneName,
		Definition: definition,
	}, nil
}

// NamespaceIDValue returns the value registrations use for the namespace id:
// a Ref to the namespace's own resource when created in this template, the
// resolved lookup value otherwise.
func (ns *PrivateNamespace) NamespaceIDValue() (any, error) {
	if ns.CfnResource {
		return cfn.Ref(ns.LogicalName), nil
	}
	descriptor, ok := ns.FindOutput(NamespaceIDAttr)
	if !ok {
		return nil, xresource.NewLookupError(ns.Resource, NamespaceIDAttr)
	}
	return descriptor.ImportValue, nil
}

// initNewOutputs registers the attribute outputs of a namespace created in
// the current template.
func (ns *PrivateNamespace) initNewOutputs() {
	ns.SetOutput(
		xresource.Attribute{Title: NamespaceIDAttr},
		&xresource.ResolutionDescriptor{
			ImportParameter: &cfn.Parameter{Title: ns.LogicalName + NamespaceIDAttr, Type: "String"},
			ImportValue:     cfn.Ref(ns.LogicalName),
		},
	)
	ns.SetOutput(
		xresource.Attribute{Title: ZoneNameAttr},
		&xresource.ResolutionDescriptor{
			ImportParameter: &cfn.Parameter{Title: ns.LogicalName + ZoneNameAttr, Type: "String"},
			ImportValue:     ns.ZoneName,
		},
	)
}

// initLookupOutputs registers the attribute outputs of a looked-up
// namespace, resolved from the shared mapping table.
func (ns *PrivateNamespace) initLookupOutputs() {
	for _, attr := range []string{NamespaceIDAttr, ZoneNameAttr, ZoneIDAttr} {
		ns.SetOutput(
			xresource.Attribute{Title: attr},
			&xresource.ResolutionDescriptor{
				ImportValue: cfn.FindInMap(MappingsKey, ns.LogicalName, attr),
			},
		)
	}
}
