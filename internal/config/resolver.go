package config

// Value is a resolved configuration value with its source: "flag", "config"
// or "default".
type Value struct {
	Value  string
	Source string
}

// Resolved holds every configuration value after applying precedence
// (flag > env/config file > default).
type Resolved struct {
	Output  Value
	Region  Value
	Profile Value
}

// ResolveOptions are the inputs to Resolve.
type ResolveOptions struct {
	OutputFlag  string
	RegionFlag  string
	ProfileFlag string

	// Config is the loaded file/env configuration, may be nil.
	Config *Config
}

// Resolve applies precedence to every configuration value.
func Resolve(opts ResolveOptions) *Resolved {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Resolved{
		Output:  resolveValue(opts.OutputFlag, cfg.Output, "yaml"),
		Region:  resolveValue(opts.RegionFlag, cfg.AWS.Region, ""),
		Profile: resolveValue(opts.ProfileFlag, cfg.AWS.Profile, ""),
	}
}

func resolveValue(flag, config, fallback string) Value {
	switch {
	case flag != "":
		return Value{Value: flag, Source: "flag"}
	case config != "":
		return Value{Value: config, Source: "config"}
	default:
		return Value{Value: fallback, Source: "default"}
	}
}
