package xresource

import (
	"github.com/tomas-polach/ecs-composex/internal/cfn"
)

// Stack owns a CloudFormation template under construction together with the
// input values the parent stack passes into it.
type Stack struct {
	Title    string
	Template *cfn.Template

	// Parameters are the stack input values, keyed by parameter title.
	Parameters map[string]any
}

// NewStack returns a stack wrapping a fresh template.
func NewStack(title, description string) *Stack {
	return &Stack{
		Title:      title,
		Template:   cfn.NewTemplate(description),
		Parameters: make(map[string]any),
	}
}

// DeclareInput declares the parameter on the stack template and records the
// value to pass for it. Declaring the same parameter twice keeps the first
// declaration and overwrites the input value.
func (s *Stack) DeclareInput(p *cfn.Parameter, value any) {
	s.Template.AddParameter(p)
	s.Parameters[p.Title] = value
}

// Settings carries the cross-module synthesis state: the external-lookup
// mapping tables maintained while resolving looked-up resources. It is
// passed explicitly to every component that reads or updates it.
type Settings struct {
	Mappings map[string]cfn.Mapping
}

// NewSettings returns settings with an empty mapping table.
func NewSettings() *Settings {
	return &Settings{Mappings: make(map[string]cfn.Mapping)}
}

// UpdateMapping merges entries into the named mapping table.
func (s *Settings) UpdateMapping(key string, mapping cfn.Mapping) {
	existing, ok := s.Mappings[key]
	if !ok {
		existing = make(cfn.Mapping, len(mapping))
		s.Mappings[key] = existing
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
