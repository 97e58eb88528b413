// Package cfn provides primitives for building AWS CloudFormation templates
// in memory: a Template container, typed resources, parameters, mappings and
// the intrinsic functions needed to wire them together.
package cfn

import (
	"encoding/json"
	"fmt"
	"sort"

	"sigs.k8s.io/yaml"
)

// FormatVersion is the CloudFormation template format version emitted for
// every template.
const FormatVersion = "2010-09-09"

// Resource is any value that can be attached to a template resource map.
// Implementations return their CloudFormation type string (for example
// "AWS::ServiceDiscovery::Service").
type Resource interface {
	ResourceType() string
}

// Parameter represents a CloudFormation template parameter.
type Parameter struct {
	Title       string `json:"-"`
	Type        string `json:"Type"`
	Description string `json:"Description,omitempty"`
	Default     string `json:"Default,omitempty"`
}

// Output represents a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty"`
	Value       any    `json:"Value"`
	Export      any    `json:"Export,omitempty"`
}

// Mapping is a single CloudFormation mapping table, keyed by top-level key
// then second-level key.
type Mapping map[string]map[string]any

// Template models a CloudFormation template under construction. The zero
// value is not usable; create instances with NewTemplate.
type Template struct {
	Description string
	Parameters  map[string]*Parameter
	Mappings    map[string]Mapping
	Resources   map[string]Resource
	Outputs     map[string]Output
}

// NewTemplate returns an initialized template with the given description.
func NewTemplate(description string) *Template {
	return &Template{
		Description: description,
		Parameters:  make(map[string]*Parameter),
		Mappings:    make(map[string]Mapping),
		Resources:   make(map[string]Resource),
		Outputs:     make(map[string]Output),
	}
}

// AddResource attaches a resource under the given title. Attaching a second
// resource with the same title is an error: titles are the identity of a
// resource within a stack.
func (t *Template) AddResource(title string, r Resource) error {
	if _, ok := t.Resources[title]; ok {
		return fmt.Errorf("resource %q is already defined in the template", title)
	}
	t.Resources[title] = r
	return nil
}

// HasResource reports whether a resource with the given title is attached.
func (t *Template) HasResource(title string) bool {
	_, ok := t.Resources[title]
	return ok
}

// AddParameter declares a template parameter. Re-declaring a parameter with
// the same title is a no-op, so callers can declare on every use.
func (t *Template) AddParameter(p *Parameter) {
	if _, ok := t.Parameters[p.Title]; ok {
		return
	}
	t.Parameters[p.Title] = p
}

// AddUpdateMapping sets or merges a mapping table. Existing second-level
// entries under the same top-level key are preserved unless overwritten.
func (t *Template) AddUpdateMapping(name string, mapping Mapping) {
	existing, ok := t.Mappings[name]
	if !ok {
		existing = make(Mapping, len(mapping))
		t.Mappings[name] = existing
	}
	for topKey, entries := range mapping {
		if existing[topKey] == nil {
			existing[topKey] = make(map[string]any, len(entries))
		}
		for k, v := range entries {
			existing[topKey][k] = v
		}
	}
}

// AddOutput declares a template output under the given title.
func (t *Template) AddOutput(title string, o Output) {
	t.Outputs[title] = o
}

// ResourceTitles returns the attached resource titles in sorted order.
func (t *Template) ResourceTitles() []string {
	titles := make([]string, 0, len(t.Resources))
	for title := range t.Resources {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// templateBody is the serialized shape of a template.
type templateBody struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty"`
	Parameters               map[string]*Parameter  `json:"Parameters,omitempty"`
	Mappings                 map[string]Mapping     `json:"Mappings,omitempty"`
	Resources                map[string]resourceDef `json:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty"`
}

// resourceDef pairs a resource type string with its properties for
// serialization.
type resourceDef struct {
	Type       string `json:"Type"`
	Properties any    `json:"Properties,omitempty"`
}

func (t *Template) body() templateBody {
	resources := make(map[string]resourceDef, len(t.Resources))
	for title, r := range t.Resources {
		resources[title] = resourceDef{Type: r.ResourceType(), Properties: r}
	}

	body := templateBody{
		AWSTemplateFormatVersion: FormatVersion,
		Description:              t.Description,
		Resources:                resources,
	}
	if len(t.Parameters) > 0 {
		body.Parameters = t.Parameters
	}
	if len(t.Mappings) > 0 {
		body.Mappings = t.Mappings
	}
	if len(t.Outputs) > 0 {
		body.Outputs = t.Outputs
	}
	return body
}

// JSON serializes the template to indented CloudFormation JSON.
func (t *Template) JSON() ([]byte, error) {
	return json.MarshalIndent(t.body(), "", "  ")
}

// YAML serializes the template to CloudFormation YAML. Serialization goes
// through the JSON representation so intrinsics keep their Fn:: map form.
func (t *Template) YAML() ([]byte, error) {
	data, err := json.Marshal(t.body())
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(data)
}
