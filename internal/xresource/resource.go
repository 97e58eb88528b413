// Package xresource models the x-resources of a compose project: the
// infrastructure entities declared under x- sections that other modules
// reference by their attribute outputs.
package xresource

import (
	"github.com/tomas-polach/ecs-composex/internal/cfn"
)

// Attribute identifies one output of a resource. Title is the canonical
// parameter title; ReturnValue is an optional alternate name matching the
// CloudFormation return value (for example "Endpoint.Address").
type Attribute struct {
	Title       string
	ReturnValue string
}

// ResolutionDescriptor pairs the template parameter to declare when the
// source resource is created in the same stack with the value to resolve it
// from: a cross-stack value for in-template resources, or a FindInMap
// expression for looked-up ones.
type ResolutionDescriptor struct {
	ImportParameter *cfn.Parameter
	ImportValue     any
}

// Resource is an infrastructure entity eligible for cross-module references.
type Resource struct {
	// Name is the name given in the compose file, ModuleName the x- module
	// that owns it (for example "rds"), LogicalName the CloudFormation-safe
	// form of Name.
	Name        string
	ModuleName  string
	LogicalName string

	// CfnResource is true when the resource is created in the current
	// execution; looked-up resources resolve through the mapping table
	// identified by MappingKey instead.
	CfnResource bool
	MappingKey  string

	// DNSSupported marks resources that can register DNS records with a
	// Cloud Map namespace.
	DNSSupported bool

	// ClusterEndpointKey names the attribute holding the resource's cluster
	// endpoint, empty when the resource has none.
	ClusterEndpointKey string

	attributes []Attribute
	outputs    map[string]*ResolutionDescriptor
}

// NewResource returns a resource with an empty outputs table.
func NewResource(name, moduleName, logicalName string) *Resource {
	return &Resource{
		Name:        name,
		ModuleName:  moduleName,
		LogicalName: logicalName,
		outputs:     make(map[string]*ResolutionDescriptor),
	}
}

// SetOutput registers the resolution descriptor for an attribute, indexed by
// both its title and, when set, its alternate return-value name.
func (r *Resource) SetOutput(attr Attribute, descriptor *ResolutionDescriptor) {
	if r.outputs == nil {
		r.outputs = make(map[string]*ResolutionDescriptor)
	}
	r.attributes = append(r.attributes, attr)
	r.outputs[attr.Title] = descriptor
	if attr.ReturnValue != "" {
		r.outputs[attr.ReturnValue] = descriptor
	}
}

// FindOutput looks up a resolution descriptor by attribute title or
// alternate return-value name. The boolean result is false when no attribute
// matches; converting that into an error is the caller's concern.
func (r *Resource) FindOutput(key string) (*ResolutionDescriptor, bool) {
	descriptor, ok := r.outputs[key]
	return descriptor, ok
}

// OutputTitles returns the canonical titles of all registered attributes, in
// registration order. Used to enumerate valid keys in lookup errors.
func (r *Resource) OutputTitles() []string {
	titles := make([]string, 0, len(r.attributes))
	for _, attr := range r.attributes {
		titles = append(titles, attr.Title)
	}
	return titles
}
