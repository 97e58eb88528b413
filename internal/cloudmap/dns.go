package cloudmap

import (
	"strings"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/compose"
	"github.com/tomas-polach/ecs-composex/internal/xresource"
)

// applyDNSConfig overlays the DnsSettings of an x-cloudmap block onto a
// generated Service/Instance pair. The caller has already validated that
// the resource supports DNS discovery.
//
// A resource without a resolvable cluster endpoint is not an error: the
// service gets its DNS name and record but no CNAME target attribute. An
// unmatched ReturnValues key, by contrast, is fatal in resolveReturnValues;
// the two policies are intentionally different.
func applyDNSConfig(ns *PrivateNamespace, r *xresource.Resource, dns *compose.DNSSettings, global *xresource.Settings, service *cfn.Service, instance *cfn.Instance) {
	hostname := dns.Hostname
	if hostname == "" {
		hostname = r.LogicalName
	}
	if !strings.Contains(hostname, ns.ZoneName) {
		hostname = hostname + "." + ns.ZoneName
	}

	// NamespaceId is left unset on the DnsConfig and inherited from the
	// service's own NamespaceId.
	service.DnsConfig = &cfn.DnsConfig{
		DnsRecords: []cfn.DnsRecord{{Type: "CNAME", TTL: DNSRecordTTL}},
	}
	service.Name = hostname

	if r.ClusterEndpointKey == "" {
		return
	}
	descriptor, ok := r.FindOutput(r.ClusterEndpointKey)
	if !ok {
		return
	}

	if r.CfnResource {
		ns.Stack.DeclareInput(descriptor.ImportParameter, descriptor.ImportValue)
		instance.InstanceAttributes[CnameAttribute] = cfn.Ref(descriptor.ImportParameter.Title)
	} else {
		ns.Stack.Template.AddUpdateMapping(r.MappingKey, global.Mappings[r.MappingKey])
		instance.InstanceAttributes[CnameAttribute] = descriptor.ImportValue
	}
}
