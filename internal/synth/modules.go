package synth

import (
	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// ModuleDefinition describes how the resources of one x- module expose
// their attributes: which outputs exist, whether DNS registration is
// supported and which output carries the cluster endpoint.
type ModuleDefinition struct {
	Name       string
	MappingKey string

	DNSSupported       bool
	ClusterEndpointKey string

	Attributes []xresource.Attribute
}

// modules is the registry of known x- modules. Modules outside the registry
// still register discovery services, with a generic attribute set and no
// DNS support.
var modules = map[string]ModuleDefinition{
	"rds": {
		Name:               "rds",
		MappingKey:         "Rds",
		DNSSupported:       true,
		ClusterEndpointKey: "Endpoint",
		Attributes: []xresource.Attribute{
			{Title: "Endpoint", ReturnValue: "Endpoint.Address"},
			{Title: "ReadEndpoint", ReturnValue: "ReadEndpoint.Address"},
			{Title: "Port", ReturnValue: "Endpoint.Port"},
			{Title: "Arn", ReturnValue: "DBClusterArn"},
		},
	},
	"docdb": {
		Name:               "docdb",
		MappingKey:         "Docdb",
		DNSSupported:       true,
		ClusterEndpointKey: "Endpoint",
		Attributes: []xresource.Attribute{
			{Title: "Endpoint", ReturnValue: "Endpoint"},
			{Title: "ReadEndpoint", ReturnValue: "ReadEndpoint"},
			{Title: "Port", ReturnValue: "Port"},
			{Title: "Arn", ReturnValue: "DBClusterArn"},
		},
	},
	"elasticache": {
		Name:       "elasticache",
		MappingKey: "Elasticache",
		Attributes: []xresource.Attribute{
			{Title: "Endpoint", ReturnValue: "RedisEndpoint.Address"},
			{Title: "Port", ReturnValue: "RedisEndpoint.Port"},
		},
	},
	"dynamodb": {
		Name:       "dynamodb",
		MappingKey: "Dynamodb",
		Attributes: []xresource.Attribute{
			{Title: "TableName"},
			{Title: "Arn", ReturnValue: "Arn"},
		},
	},
	"sqs": {
		Name:       "sqs",
		MappingKey: "Sqs",
		Attributes: []xresource.Attribute{
			{Title: "QueueUrl"},
			{Title: "QueueName", ReturnValue: "QueueName"},
			{Title: "Arn", ReturnValue: "Arn"},
		},
	},
}

// ModuleFor returns the definition for an x- module name, falling back to a
// generic one for modules the registry does not know.
func ModuleFor(name string) ModuleDefinition {
	if def, ok := modules[name]; ok {
		return def
	}
	return ModuleDefinition{
		Name:       name,
		MappingKey: xresource.LogicalName(name),
		Attributes: []xresource.Attribute{
			{Title: "Arn", ReturnValue: "Arn"},
		},
	}
}

// BuildResource turns one compose resource definition into an x-resource
// with its attribute outputs registered. Looked-up resources publish their
// Lookup Outputs literals into the shared mapping table.
func BuildResource(module ModuleDefinition, name string, def compose.ResourceDefinition, settings *xresource.Settings) *xresource.Resource {
	r := xresource.NewResource(name, module.Name, xresource.LogicalName(name))
	r.CfnResource = !def.IsLookup()
	r.MappingKey = module.MappingKey
	r.DNSSupported = module.DNSSupported
	r.ClusterEndpointKey = module.ClusterEndpointKey

	if r.CfnResource {
		for _, attr := range module.Attributes {
			value := any(cfn.Ref(r.LogicalName))
			if attr.ReturnValue != "" {
				value = cfn.GetAtt(r.LogicalName, attr.ReturnValue)
			}
			r.SetOutput(attr, &xresource.ResolutionDescriptor{
				ImportParameter: &cfn.Parameter{Title: r.LogicalName + attr.Title, Type: "String"},
				ImportValue:     value,
			})
		}
		return r
	}

	for _, attr := range module.Attributes {
		r.SetOutput(attr, &xresource.ResolutionDescriptor{
			ImportValue: cfn.FindInMap(module.MappingKey, r.LogicalName, attr.Title),
		})
	}
	if outputs := lookupOutputs(def); len(outputs) > 0 {
		settings.UpdateMapping(module.MappingKey, cfn.Mapping{r.LogicalName: outputs})
	}
	return r
}

// lookupOutputs extracts the resolved attribute literals of a looked-up
// resource from its Lookup.Outputs block.
func lookupOutputs(def compose.ResourceDefinition) map[string]any {
	raw, ok := def.Lookup["Outputs"].(map[string]any)
	if !ok {
		return nil
	}
	return raw
}
