// Package cloudmap registers compose x-resources into AWS Cloud Map private
// namespaces: it builds the namespace stack, resolves looked-up namespaces
// through the AWS API, and attaches discovery Service/Instance pairs for
// resources that declare x-cloudmap settings.
package cloudmap

// ModuleName is the module identifier for Cloud Map namespaces.
const ModuleName = "cloudmap"

// MappingsKey is the template mapping table holding looked-up namespace
// properties.
const MappingsKey = "AwsCloudMap"

// StackDescription is the description of the namespaces stack template.
const StackDescription = "AWS CloudMap Namespaces"

// Namespace attribute titles.
const (
	// NamespaceIDAttr is the private namespace id output.
	NamespaceIDAttr = "Id"

	// ZoneNameAttr is the private DNS zone name output.
	ZoneNameAttr = "ZoneName"

	// ZoneIDAttr is the hosted zone id output.
	ZoneIDAttr = "ZoneId"
)

// ReservedAttributePrefix marks system-managed instance attributes; user
// supplied AdditionalAttributes with this prefix are dropped.
const ReservedAttributePrefix = "AWS_"

// CnameAttribute is the instance attribute carrying the DNS CNAME target.
const CnameAttribute = "AWS_INSTANCE_CNAME"

// DNSRecordTTL is the TTL, in seconds, of the CNAME records registered for
// DNS-enabled services.
const DNSRecordTTL = "15"
