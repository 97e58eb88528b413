package xresource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-polach/ecs-composex/internal/cfn"
)

func TestFindOutput(t *testing.T) {
	r := NewResource("db1", "rds", "Db1")
	endpoint := &ResolutionDescriptor{
		ImportParameter: &cfn.Parameter{Title: "Db1Endpoint", Type: "String"},
		ImportValue:     cfn.GetAtt("Db1", "Endpoint.Address"),
	}
	r.SetOutput(Attribute{Title: "Db1Endpoint", ReturnValue: "Endpoint.Address"}, endpoint)

	t.Run("by title", func(t *testing.T) {
		got, ok := r.FindOutput("Db1Endpoint")
		require.True(t, ok)
		assert.Same(t, endpoint, got)
	})

	t.Run("by alternate return value name", func(t *testing.T) {
		got, ok := r.FindOutput("Endpoint.Address")
		require.True(t, ok)
		assert.Same(t, endpoint, got)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := r.FindOutput("Port")
		assert.False(t, ok)
	})
}

func TestOutputTitles(t *testing.T) {
	r := NewResource("db1", "rds", "Db1")
	r.SetOutput(Attribute{Title: "Db1Endpoint", ReturnValue: "Endpoint.Address"}, &ResolutionDescriptor{})
	r.SetOutput(Attribute{Title: "Db1Port"}, &ResolutionDescriptor{})

	assert.Equal(t, []string{"Db1Endpoint", "Db1Port"}, r.OutputTitles())
}

func TestStackDeclareInput(t *testing.T) {
	stack := NewStack("cloudmap", "test stack")
	p := &cfn.Parameter{Title: "Db1Endpoint", Type: "String"}

	stack.DeclareInput(p, cfn.GetAtt("Db1", "Endpoint.Address"))
	stack.DeclareInput(p, cfn.GetAtt("Db1", "Endpoint.Address"))

	require.Len(t, stack.Template.Parameters, 1)
	assert.Equal(t, cfn.GetAtt("Db1", "Endpoint.Address"), stack.Parameters["Db1Endpoint"])
}

func TestSettingsUpdateMapping(t *testing.T) {
	settings := NewSettings()

	settings.UpdateMapping("Rds", cfn.Mapping{"Cluster1": {"Endpoint": "db.internal"}})
	settings.UpdateMapping("Rds", cfn.Mapping{"Cluster1": {"Port": 5432}})

	got := settings.Mappings["Rds"]
	assert.Equal(t, "db.internal", got["Cluster1"]["Endpoint"])
	assert.Equal(t, 5432, got["Cluster1"]["Port"])
}
