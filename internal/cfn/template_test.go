package cfn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResource(t *testing.T) {
	tpl := NewTemplate("test")

	svc := &Service{Description: "db", Type: String(HTTPServiceType)}
	require.NoError(t, tpl.AddResource("rdsDbService", svc))
	assert.True(t, tpl.HasResource("rdsDbService"))

	t.Run("duplicate title is rejected", func(t *testing.T) {
		err := tpl.AddResource("rdsDbService", &Service{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already defined")
	})
}

func TestAddParameterIsIdempotent(t *testing.T) {
	tpl := NewTemplate("test")
	first := &Parameter{Title: "DbEndpoint", Type: "String"}

	tpl.AddParameter(first)
	tpl.AddParameter(&Parameter{Title: "DbEndpoint", Type: "Number"})

	require.Len(t, tpl.Parameters, 1)
	assert.Same(t, first, tpl.Parameters["DbEndpoint"])
}

func TestAddUpdateMapping(t *testing.T) {
	tpl := NewTemplate("test")

	tpl.AddUpdateMapping("Rds", Mapping{
		"Cluster1": {"Endpoint": "db.internal", "Port": 5432},
	})
	tpl.AddUpdateMapping("Rds", Mapping{
		"Cluster1": {"Port": 3306},
		"Cluster2": {"Endpoint": "db2.internal"},
	})

	got := tpl.Mappings["Rds"]
	assert.Equal(t, "db.internal", got["Cluster1"]["Endpoint"])
	assert.Equal(t, 3306, got["Cluster1"]["Port"])
	assert.Equal(t, "db2.internal", got["Cluster2"]["Endpoint"])
}

func TestTemplateJSON(t *testing.T) {
	tpl := NewTemplate("cloudmap stack")
	tpl.AddParameter(&Parameter{Title: "VpcId", Type: "AWS::EC2::VPC::Id"})
	require.NoError(t, tpl.AddResource("TestNamespace", &PrivateDnsNamespace{
		Name: "svc.local",
		Vpc:  Ref("VpcId"),
	}))
	tpl.AddOutput("TestNamespaceId", Output{Value: Ref("TestNamespace")})

	data, err := tpl.JSON()
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, FormatVersion, body["AWSTemplateFormatVersion"])

	resources, ok := body["Resources"].(map[string]any)
	require.True(t, ok)
	ns, ok := resources["TestNamespace"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AWS::ServiceDiscovery::PrivateDnsNamespace", ns["Type"])

	props, ok := ns["Properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "svc.local", props["Name"])
	assert.Equal(t, map[string]any{"Ref": "VpcId"}, props["Vpc"])
}

func TestTemplateYAML(t *testing.T) {
	tpl := NewTemplate("cloudmap stack")
	require.NoError(t, tpl.AddResource("AppService", &Service{
		Description: "app",
		NamespaceId: Ref("TestNamespace"),
		Type:        String(HTTPServiceType),
	}))

	data, err := tpl.YAML()
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "AWS::ServiceDiscovery::Service")
	assert.Contains(t, text, "Type: HTTP")
	assert.Contains(t, text, "Ref: TestNamespace")
}

func TestServiceTypeOmittedWhenNil(t *testing.T) {
	svc := &Service{
		Description: "db",
		DnsConfig: &DnsConfig{
			DnsRecords: []DnsRecord{{Type: "CNAME", TTL: "15"}},
		},
	}

	data, err := json.Marshal(svc)
	require.NoError(t, err)

	var props map[string]any
	require.NoError(t, json.Unmarshal(data, &props))
	_, hasType := props["Type"]
	assert.False(t, hasType, "nil Type must not be serialized")
	assert.Contains(t, props, "DnsConfig")
}

func TestIntrinsics(t *testing.T) {
	assert.Equal(t, map[string]any{"Ref": "Thing"}, Ref("Thing"))
	assert.Equal(t,
		map[string]any{"Fn::GetAtt": []any{"Thing", "Arn"}},
		GetAtt("Thing", "Arn"))
	assert.Equal(t,
		map[string]any{"Fn::FindInMap": []any{"Rds", "Cluster1", "Endpoint"}},
		FindInMap("Rds", "Cluster1", "Endpoint"))
}
