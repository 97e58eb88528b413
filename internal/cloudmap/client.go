package cloudmap

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"

	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
)

// NewClient builds a Cloud Map client from the ambient AWS configuration.
// Region and profile are optional overrides.
func NewClient(ctx context.Context, region, profile string) (*servicediscovery.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, xerrors.NewAWSError(
			"loading AWS configuration",
			map[string]string{"profile": profile, "region": region},
			"check AWS credentials, profile and region settings",
		).WithCause(err)
	}
	return servicediscovery.NewFromConfig(cfg), nil
}
