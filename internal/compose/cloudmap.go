package compose

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CloudMapSettings is the x-cloudmap block of a resource definition. The
// shorthand string form names the target namespace and nothing else:
//
//	x-cloudmap: internal
//
// is equivalent to
//
//	x-cloudmap:
//	  Namespace: internal
type CloudMapSettings struct {
	Namespace            string            `yaml:"Namespace"`
	ForceRegister        bool              `yaml:"ForceRegister"`
	ReturnValues         map[string]string `yaml:"ReturnValues"`
	AdditionalAttributes map[string]string `yaml:"AdditionalAttributes"`
	DNSSettings          *DNSSettings      `yaml:"DnsSettings"`
}

// DNSSettings configures the DNS record registered for a resource. Hostname
// defaults to the resource logical name when empty.
type DNSSettings struct {
	Hostname string `yaml:"Hostname"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the shorthand string
// form alongside the full mapping form.
func (s *CloudMapSettings) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var namespace string
		if err := node.Decode(&namespace); err != nil {
			return fmt.Errorf("unsupported x-cloudmap value: %w", err)
		}
		s.Namespace = namespace
		return nil
	case yaml.MappingNode:
		type plain CloudMapSettings
		return node.Decode((*plain)(s))
	default:
		return fmt.Errorf("unsupported x-cloudmap node kind: %v", node.Kind)
	}
}
