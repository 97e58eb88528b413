// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// AWSConfig contains AWS-specific settings used for namespace lookups.
type AWSConfig struct {
	// Region overrides the ambient AWS region.
	// Env: COMPOSEX_AWS_REGION
	Region string `mapstructure:"region"`

	// Profile selects a shared-credentials profile.
	// Env: COMPOSEX_AWS_PROFILE
	Profile string `mapstructure:"profile"`
}

// Config represents the composex CLI configuration, loaded from
// ~/.composex/config.yaml with environment overrides.
type Config struct {
	// Output is the default template output format: yaml, json or dir.
	// Env: COMPOSEX_OUTPUT
	Output string `mapstructure:"output"`

	// AWS contains AWS-specific settings.
	AWS AWSConfig `mapstructure:"aws"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Output: "yaml",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	if c.Output == "" {
		c.Output = "yaml"
	}
	return c
}
