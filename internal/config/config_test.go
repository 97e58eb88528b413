package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-polach/ecs-composex/internal/testutil"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", `
output: json
aws:
  region: eu-west-1
  profile: staging
log:
  timestamps: true
`)

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "staging", cfg.AWS.Profile)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-config.yaml")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Empty(t, cfg.AWS.Region)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "output: json\n")
	t.Setenv("COMPOSEX_OUTPUT", "dir")
	t.Setenv("COMPOSEX_AWS_REGION", "us-east-2")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "dir", cfg.Output)
	assert.Equal(t, "us-east-2", cfg.AWS.Region)
}

func TestResolvePrecedence(t *testing.T) {
	cfg := &Config{Output: "json", AWS: AWSConfig{Region: "eu-west-1"}}

	t.Run("flag wins", func(t *testing.T) {
		resolved := Resolve(ResolveOptions{OutputFlag: "dir", Config: cfg})
		assert.Equal(t, Value{Value: "dir", Source: "flag"}, resolved.Output)
	})

	t.Run("config file second", func(t *testing.T) {
		resolved := Resolve(ResolveOptions{Config: cfg})
		assert.Equal(t, Value{Value: "json", Source: "config"}, resolved.Output)
		assert.Equal(t, Value{Value: "eu-west-1", Source: "config"}, resolved.Region)
	})

	t.Run("defaults last", func(t *testing.T) {
		resolved := Resolve(ResolveOptions{})
		assert.Equal(t, Value{Value: "yaml", Source: "default"}, resolved.Output)
		assert.Equal(t, "default", resolved.Profile.Source)
	})
}

func TestExpandPath(t *testing.T) {
	expanded, err := ExpandPath("~/config.yaml")
	require.NoError(t, err)
	assert.NotContains(t, expanded, "~")
	assert.True(t, filepath.IsAbs(expanded))

	plain, err := ExpandPath("/etc/composex.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/composex.yaml", plain)
}
