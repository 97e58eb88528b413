package cloudmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"

	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
	"github.com/tomas-polach/ecs-composex/internal/output"
)

// ServiceDiscoveryAPI is the slice of the Cloud Map API the resolver needs.
// The SDK client satisfies it; tests stub it.
type ServiceDiscoveryAPI interface {
	ListNamespaces(ctx context.Context, params *servicediscovery.ListNamespacesInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.ListNamespacesOutput, error)
	GetNamespace(ctx context.Context, params *servicediscovery.GetNamespaceInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.GetNamespaceOutput, error)
}

// AWSResolver resolves namespace lookups against the Cloud Map API.
type AWSResolver struct {
	client ServiceDiscoveryAPI
}

// NewAWSResolver returns a resolver backed by the given client.
func NewAWSResolver(client ServiceDiscoveryAPI) *AWSResolver {
	return &AWSResolver{client: client}
}

// Resolve finds the existing namespace matching the declaration: by
// NamespaceId when the Lookup block sets one, otherwise by scanning the
// account's private DNS namespaces for the declared zone name.
func (r *AWSResolver) Resolve(ctx context.Context, ns *PrivateNamespace) (LookupProperties, error) {
	if lookup := ns.Definition.Lookup; lookup != nil && lookup.NamespaceID != "" {
		return r.resolveByID(ctx, ns, lookup.NamespaceID)
	}
	return r.resolveByZoneName(ctx, ns)
}

func (r *AWSResolver) resolveByID(ctx context.Context, ns *PrivateNamespace, id string) (LookupProperties, error) {
	result, err := r.client.GetNamespace(ctx, &servicediscovery.GetNamespaceInput{Id: aws.String(id)})
	if err != nil {
		return LookupProperties{}, xerrors.NewAWSError(
			fmt.Sprintf("getting namespace %s", id),
			map[string]string{"namespace": ns.Name}, "",
		).WithCause(err)
	}
	return namespaceProperties(ns, result.Namespace)
}

func (r *AWSResolver) resolveByZoneName(ctx context.Context, ns *PrivateNamespace) (LookupProperties, error) {
	input := &servicediscovery.ListNamespacesInput{
		Filters: []types.NamespaceFilter{{
			Name:      types.NamespaceFilterNameType,
			Values:    []string{string(types.NamespaceTypeDnsPrivate)},
			Condition: types.FilterConditionEq,
		}},
	}

	var matches []types.NamespaceSummary
	for {
		page, err := r.client.ListNamespaces(ctx, input)
		if err != nil {
			return LookupProperties{}, xerrors.NewAWSError(
				"listing namespaces",
				map[string]string{"namespace": ns.Name},
				"check AWS credentials and region",
			).WithCause(err)
		}
		for _, summary := range page.Namespaces {
			if zoneName(summary.Name) == ns.ZoneName {
				matches = append(matches, summary)
			}
		}
		if page.NextToken == nil {
			break
		}
		input.NextToken = page.NextToken
	}

	switch len(matches) {
	case 0:
		return LookupProperties{}, xerrors.Wrap(xerrors.ErrLookup,
			fmt.Sprintf("%s.%s - no private DNS namespace found for zone %s",
				ns.ModuleName, ns.Name, ns.ZoneName))
	case 1:
		result, err := r.client.GetNamespace(ctx, &servicediscovery.GetNamespaceInput{Id: matches[0].Id})
		if err != nil {
			return LookupProperties{}, xerrors.NewAWSError(
				fmt.Sprintf("getting namespace %s", aws.ToString(matches[0].Id)),
				map[string]string{"namespace": ns.Name}, "",
			).WithCause(err)
		}
		return namespaceProperties(ns, result.Namespace)
	default:
		ids := make([]string, 0, len(matches))
		for _, summary := range matches {
			ids = append(ids, aws.ToString(summary.Id))
		}
		return LookupProperties{}, xerrors.Wrap(xerrors.ErrLookup,
			fmt.Sprintf("%s.%s - multiple namespaces match zone %s: %s",
				ns.ModuleName, ns.Name, ns.ZoneName, strings.Join(ids, ", ")))
	}
}

// namespaceProperties extracts the lookup attributes from a resolved
// namespace, rejecting HTTP-only namespaces.
func namespaceProperties(ns *PrivateNamespace, namespace *types.Namespace) (LookupProperties, error) {
	if namespace == nil {
		return LookupProperties{}, xerrors.Wrap(xerrors.ErrLookup,
			fmt.Sprintf("%s.%s - namespace lookup returned no namespace", ns.ModuleName, ns.Name))
	}
	if namespace.Type == types.NamespaceTypeHttp {
		return LookupProperties{}, xerrors.Wrap(xerrors.ErrLookup,
			fmt.Sprintf("%s.%s - namespace %s is HTTP only, a private DNS namespace is required",
				ns.ModuleName, ns.Name, aws.ToString(namespace.Id)))
	}

	properties := LookupProperties{
		NamespaceID: aws.ToString(namespace.Id),
		ZoneName:    zoneName(namespace.Name),
	}
	if namespace.Properties != nil && namespace.Properties.DnsProperties != nil {
		properties.ZoneID = aws.ToString(namespace.Properties.DnsProperties.HostedZoneId)
	}

	if properties.ZoneName != ns.ZoneName {
		output.Warn("resolved namespace zone differs from the declared ZoneName",
			"namespace", ns.Name, "declared", ns.ZoneName, "resolved", properties.ZoneName)
	}
	return properties, nil
}

// zoneName normalizes a namespace name to a zone name, trimming the
// trailing dot Route53 appends.
func zoneName(name *string) string {
	return strings.TrimSuffix(aws.ToString(name), ".")
}
