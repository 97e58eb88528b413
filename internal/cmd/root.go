package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tomas-polach/ecs-composex/internal/config"
	"github.com/tomas-polach/ecs-composex/internal/output"
)

var (
	// Global flags
	configFlag       string
	outputFormatFlag string
	regionFlag       string
	profileFlag      string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	composexConfig *config.Config
	resolvedConfig *config.Resolved
)

// NewRootCmd creates the root command for the composex CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "composex",
		Short:         "Compose to CloudFormation synthesis",
		Long:          `composex renders AWS Cloud Map service discovery CloudFormation templates from compose files with x-cloudmap extensions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: COMPOSEX_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: yaml, json, dir")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "AWS region for namespace lookups (env: COMPOSEX_AWS_REGION)")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "AWS profile for namespace lookups (env: COMPOSEX_AWS_PROFILE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewRenderCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config still work.
		loaded = config.DefaultConfig()
	}
	composexConfig = loaded

	resolvedConfig = config.Resolve(config.ResolveOptions{
		OutputFlag:  outputFormatFlag,
		RegionFlag:  regionFlag,
		ProfileFlag: profileFlag,
		Config:      composexConfig,
	})

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if composexConfig.Log.Timestamps != nil {
		logCfg.Timestamps = composexConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"output", resolvedConfig.Output.Value,
			"region", resolvedConfig.Region.Value,
			"profile", resolvedConfig.Profile.Value,
		)
	}
	return nil
}

// GetOutputFormat returns the resolved output format.
func GetOutputFormat() string {
	if resolvedConfig != nil {
		return resolvedConfig.Output.Value
	}
	return outputFormatFlag
}

// GetRegion returns the resolved AWS region.
func GetRegion() string {
	if resolvedConfig != nil {
		return resolvedConfig.Region.Value
	}
	return regionFlag
}

// GetProfile returns the resolved AWS profile.
func GetProfile() string {
	if resolvedConfig != nil {
		return resolvedConfig.Profile.Value
	}
	return profileFlag
}
