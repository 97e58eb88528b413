package synth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
	"github.com/tomas-polach/ecs-composex/internal/cloudmap"
	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
	"github.com/tomas-polach/ecs-composex/internal/output"
	"github.com/tomas-polach/ecs-composex/internal/testutil"
)

const renderProject = `
services:
  app:
    image: myorg/app:latest

x-cloudmap:
  internal:
    ZoneName: db.internal

x-rds:
  db-cluster-1:
    Properties:
      Engine: aurora-postgresql
    x-cloudmap:
      Namespace: internal
      ReturnValues:
        Endpoint: DB_ENDPOINT
        Port: DB_PORT
      DnsSettings:
        Hostname: primary-db
`

// staticResolver satisfies cloudmap.NamespaceResolver with fixed properties.
type staticResolver struct {
	properties cloudmap.LookupProperties
}

func (r *staticResolver) Resolve(_ context.Context, _ *cloudmap.PrivateNamespace) (cloudmap.LookupProperties, error) {
	return r.properties, nil
}

func runProject(t *testing.T, content string, opts *Options) *Result {
	t.Helper()
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "compose.yaml", content)
	if opts == nil {
		opts = &Options{}
	}
	opts.ComposePaths = []string{path}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	return result
}

func TestRunRendersNewNamespace(t *testing.T) {
	result := runProject(t, renderProject, nil)

	require.Len(t, result.Registrations, 1)
	registration := result.Registrations[0]
	assert.Equal(t, "internal", registration.Namespace)
	assert.Equal(t, "rds", registration.Module)
	assert.Equal(t, "rdsDbcluster1Service", registration.ServiceTitle)

	template := result.Stack.Template
	assert.Equal(t, []string{
		"Internal",
		"rdsDbcluster1Service",
		"rdsDbcluster1ServiceInstance",
	}, template.ResourceTitles())

	service := template.Resources["rdsDbcluster1Service"].(*cfn.Service)
	assert.Nil(t, service.Type)
	assert.Equal(t, "primary-db.db.internal", service.Name)
	require.NotNil(t, service.DnsConfig)

	instance := template.Resources["rdsDbcluster1ServiceInstance"].(*cfn.Instance)
	assert.Equal(t, cfn.Ref("Dbcluster1Endpoint"), instance.InstanceAttributes["DB_ENDPOINT"])
	assert.Equal(t, cfn.Ref("Dbcluster1Port"), instance.InstanceAttributes["DB_PORT"])
	assert.Equal(t, cfn.Ref("Dbcluster1Endpoint"), instance.InstanceAttributes["AWS_INSTANCE_CNAME"])

	assert.Equal(t, cfn.GetAtt("Dbcluster1", "Endpoint.Address"),
		result.Stack.Parameters["Dbcluster1Endpoint"])
}

func TestRunResolvesLookups(t *testing.T) {
	resolver := &staticResolver{properties: cloudmap.LookupProperties{
		NamespaceID: "ns-0123456789abcdef",
		ZoneID:      "Z0123456789",
		ZoneName:    "shared.internal",
	}}

	result := runProject(t, `
x-cloudmap:
  shared:
    ZoneName: shared.internal
    Lookup: true

x-rds:
  legacy-db:
    Lookup:
      Outputs:
        Endpoint: legacy.cluster.rds.amazonaws.com
        Port: "5432"
    x-cloudmap:
      Namespace: shared
      ForceRegister: true
      ReturnValues:
        Endpoint: DB_ENDPOINT
`, &Options{Resolver: resolver})

	require.Len(t, result.Registrations, 1)

	template := result.Stack.Template
	instance := template.Resources["rdsLegacydbServiceInstance"].(*cfn.Instance)
	assert.Equal(t, cfn.FindInMap("Rds", "Legacydb", "Endpoint"), instance.InstanceAttributes["DB_ENDPOINT"])

	assert.Equal(t, "legacy.cluster.rds.amazonaws.com", template.Mappings["Rds"]["Legacydb"]["Endpoint"])
	assert.Equal(t, "ns-0123456789abcdef",
		template.Mappings[cloudmap.MappingsKey]["Shared"][cloudmap.NamespaceIDAttr])

	service := template.Resources["rdsLegacydbService"].(*cfn.Service)
	assert.Equal(t, cfn.FindInMap(cloudmap.MappingsKey, "Shared", cloudmap.NamespaceIDAttr), service.NamespaceId)
}

func TestRunSkipsResourcesWithoutSettings(t *testing.T) {
	result := runProject(t, `
x-cloudmap:
  internal:
    ZoneName: db.internal

x-rds:
  plain-db:
    Properties:
      Engine: aurora-postgresql
`, nil)

	assert.Empty(t, result.Registrations)
	assert.Equal(t, []string{"Internal"}, result.Stack.Template.ResourceTitles())
}

func TestRunUndeclaredNamespace(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "compose.yaml", `
x-cloudmap:
  internal:
    ZoneName: db.internal

x-rds:
  db1:
    x-cloudmap:
      Namespace: missing
`)

	_, err := Run(context.Background(), &Options{ComposePaths: []string{path}})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrValidation)
	assert.Contains(t, err.Error(), "missing")
}

func TestRunGenericModuleFallback(t *testing.T) {
	result := runProject(t, `
x-cloudmap:
  internal:
    ZoneName: apps.internal

x-appconfig:
  feature-flags:
    x-cloudmap: internal
`, nil)

	require.Len(t, result.Registrations, 1)
	assert.Equal(t, "appconfig", result.Registrations[0].Module)
	assert.True(t, result.Stack.Template.HasResource("appconfigFeatureflagsService"))

	service := result.Stack.Template.Resources["appconfigFeatureflagsService"].(*cfn.Service)
	require.NotNil(t, service.Type)
	assert.Equal(t, cfn.HTTPServiceType, *service.Type)
}

func TestRunFixtureProject(t *testing.T) {
	resolver := &staticResolver{properties: cloudmap.LookupProperties{
		NamespaceID: "ns-abcd1234",
		ZoneID:      "Z0123456789",
		ZoneName:    "shared.internal",
	}}
	path := testutil.FixturePath(t, "compose", "full.yaml")

	result, err := Run(context.Background(), &Options{
		ComposePaths: []string{path},
		Resolver:     resolver,
	})
	require.NoError(t, err)

	require.Len(t, result.Registrations, 3)

	template := result.Stack.Template
	assert.Equal(t, []string{
		"Internal",
		"rdsDbcluster1Service",
		"rdsDbcluster1ServiceInstance",
		"rdsLegacydbService",
		"rdsLegacydbServiceInstance",
		"sqsJobsqueueService",
		"sqsJobsqueueServiceInstance",
	}, template.ResourceTitles())

	data, err := template.YAML()
	require.NoError(t, err)
	rendered := string(data)
	assert.Contains(t, rendered, "AWS::ServiceDiscovery::PrivateDnsNamespace")
	assert.Contains(t, rendered, "primary-db.db.internal")
	assert.Contains(t, rendered, "AwsCloudMap")
}

func TestOptionsValidate(t *testing.T) {
	t.Run("compose files required", func(t *testing.T) {
		err := (&Options{}).Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, xerrors.ErrValidation)
	})

	t.Run("format defaults to yaml", func(t *testing.T) {
		opts := &Options{ComposePaths: []string{"compose.yaml"}}
		require.NoError(t, opts.Validate())
		assert.Equal(t, output.FormatYAML, opts.Format)
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		opts := &Options{ComposePaths: []string{"compose.yaml"}, Format: "toml"}
		err := opts.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, xerrors.ErrValidation)
	})
}

func TestModuleFor(t *testing.T) {
	rds := ModuleFor("rds")
	assert.True(t, rds.DNSSupported)
	assert.Equal(t, "Endpoint", rds.ClusterEndpointKey)

	generic := ModuleFor("appmesh")
	assert.False(t, generic.DNSSupported)
	assert.Equal(t, "Appmesh", generic.MappingKey)
}
