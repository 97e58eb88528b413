package cfn

// AWS Cloud Map (ServiceDiscovery) resource types. Optional fields use
// pointers or omitempty so an unset field is absent from the rendered
// template rather than serialized as an empty value.

// PrivateDnsNamespace is an AWS::ServiceDiscovery::PrivateDnsNamespace.
type PrivateDnsNamespace struct {
	Name        string `json:"Name"`
	Vpc         any    `json:"Vpc"`
	Description string `json:"Description,omitempty"`
}

// ResourceType implements Resource.
func (*PrivateDnsNamespace) ResourceType() string {
	return "AWS::ServiceDiscovery::PrivateDnsNamespace"
}

// DnsRecord is a single record of a discovery service DNS configuration.
type DnsRecord struct {
	Type string `json:"Type"`
	TTL  string `json:"TTL"`
}

// DnsConfig is the DNS configuration of a discovery service. NamespaceId is
// omitted when empty and inherited from the owning service.
type DnsConfig struct {
	DnsRecords    []DnsRecord `json:"DnsRecords"`
	NamespaceId   any         `json:"NamespaceId,omitempty"`
	RoutingPolicy string      `json:"RoutingPolicy,omitempty"`
}

// Service is an AWS::ServiceDiscovery::Service. Type is a pointer: nil means
// the field is omitted, which is required for DNS-enabled services.
type Service struct {
	Description string     `json:"Description,omitempty"`
	Name        string     `json:"Name,omitempty"`
	NamespaceId any        `json:"NamespaceId,omitempty"`
	Type        *string    `json:"Type,omitempty"`
	DnsConfig   *DnsConfig `json:"DnsConfig,omitempty"`
}

// ResourceType implements Resource.
func (*Service) ResourceType() string {
	return "AWS::ServiceDiscovery::Service"
}

// HTTPServiceType is the service type for API-only (non-DNS) discovery
// services.
const HTTPServiceType = "HTTP"

// String pointer helper for optional fields.
func String(s string) *string {
	return &s
}

// Instance is an AWS::ServiceDiscovery::Instance.
type Instance struct {
	ServiceId          any            `json:"ServiceId"`
	InstanceAttributes map[string]any `json:"InstanceAttributes"`
	InstanceId         string         `json:"InstanceId,omitempty"`
}

// ResourceType implements Resource.
func (*Instance) ResourceType() string {
	return "AWS::ServiceDiscovery::Instance"
}
