package cloudmap

import (
	"sort"
	"strings"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// ServiceTitle returns the deterministic title of the discovery service
// generated for a resource. The title doubles as the idempotency key: a
// resource produces at most one Service/Instance pair per template.
func ServiceTitle(r *xresource.Resource) string {
	return r.ModuleName + r.LogicalName + "Service"
}

// RegisterResource evaluates a resource's x-cloudmap settings block against
// a namespace and, when they match, attaches a discovery Service/Instance
// pair to the namespace's stack template.
//
// Mismatched namespaces, ineligible resources and already-registered
// resources are silent skips; only unresolvable ReturnValues keys are
// errors.
func RegisterResource(ns *PrivateNamespace, r *xresource.Resource, settings *compose.CloudMapSettings, global *xresource.Settings) error {
	if settings.Namespace != ns.Name {
		output.Debug("settings block targets another namespace",
			"resource", r.Name, "namespace", ns.Name, "target", settings.Namespace)
		return nil
	}
	if !r.CfnResource && !settings.ForceRegister {
		output.Debug("lookup resource without ForceRegister, skipping",
			"resource", r.Name, "namespace", ns.Name)
		return nil
	}
	serviceTitle := ServiceTitle(r)
	if ns.Stack.Template.HasResource(serviceTitle) {
		output.Debug("resource already registered", "resource", r.Name, "service", serviceTitle)
		return nil
	}

	namespaceID, err := ns.NamespaceIDValue()
	if err != nil {
		return err
	}
	// A looked-up namespace resolves through FindInMap; the mapping table
	// has to travel with the template.
	if !ns.CfnResource {
		ns.Stack.Template.AddUpdateMapping(ns.MappingKey, global.Mappings[ns.MappingKey])
	}

	service := &cfn.Service{
		Description: r.Name,
		NamespaceId: namespaceID,
		Type:        cfn.String(cfn.HTTPServiceType),
	}
	attributes := make(map[string]any)

	if len(settings.ReturnValues) > 0 {
		if err := resolveReturnValues(ns, r, settings.ReturnValues, attributes, global); err != nil {
			return err
		}
	}
	if len(settings.AdditionalAttributes) > 0 {
		applyAdditionalAttributes(settings.AdditionalAttributes, attributes)
	}

	instance := &cfn.Instance{
		ServiceId:          cfn.Ref(serviceTitle),
		InstanceAttributes: attributes,
	}

	switch {
	case settings.DNSSettings != nil && r.DNSSupported:
		// DNS-enabled services must not declare an HTTP type.
		service.Type = nil
		applyDNSConfig(ns, r, settings.DNSSettings, global, service, instance)
	case settings.DNSSettings != nil && !r.DNSSupported:
		output.Warn("resource does not support DnsSettings for x-cloudmap",
			"module", r.ModuleName, "resource", r.Name)
	}

	if err := ns.Stack.Template.AddResource(serviceTitle, service); err != nil {
		return err
	}
	return ns.Stack.Template.AddResource(serviceTitle+"Instance", instance)
}

// resolveReturnValues resolves each requested output into an instance
// attribute: a parameter reference for in-template resources, the resolved
// mapping value for looked-up ones. Unmatched keys are fatal.
func resolveReturnValues(ns *PrivateNamespace, r *xresource.Resource, returnValues map[string]string, attributes map[string]any, global *xresource.Settings) error {
	keys := make([]string, 0, len(returnValues))
	for key := range returnValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		descriptor, ok := r.FindOutput(key)
		if !ok {
			return xresource.NewLookupError(r, key)
		}
		attributeName := returnValues[key]
		if r.CfnResource {
			ns.Stack.DeclareInput(descriptor.ImportParameter, descriptor.ImportValue)
			attributes[attributeName] = cfn.Ref(descriptor.ImportParameter.Title)
		} else {
			ns.Stack.Template.AddUpdateMapping(r.MappingKey, global.Mappings[r.MappingKey])
			attributes[attributeName] = descriptor.ImportValue
		}
	}
	return nil
}

// applyAdditionalAttributes copies user attributes verbatim, dropping keys
// with the reserved system prefix.
func applyAdditionalAttributes(additional map[string]string, attributes map[string]any) {
	for key, value := range additional {
		if strings.HasPrefix(key, ReservedAttributePrefix) {
			continue
		}
		attributes[key] = value
	}
}
