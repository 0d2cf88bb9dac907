package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/pkg/pricing"
)

// ErrNoRegion is returned when neither the flags nor the SDK chain name a region
var ErrNoRegion = errors.New("no AWS region configured; pass --region or set AWS_REGION")

// loadOptions disables SDK retries: a failed call aborts the command
func loadOptions() []func(*config.LoadOptions) error {
	return []func(*config.LoadOptions) error{
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
}

// NewClients loads the AWS configuration for region and creates the service
// clients. An empty region defers to the SDK chain (environment, shared
// config, then instance metadata). The resolved region is returned.
func NewClients(ctx context.Context, region, pricingRegion string) (*Clients, string, error) {
	opts := loadOptions()
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	} else {
		opts = append(opts, config.WithEC2IMDSRegion())
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("error loading AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, "", ErrNoRegion
	}

	pricingClient, err := pricing.NewClient(ctx, pricingRegion, loadOptions()...)
	if err != nil {
		return nil, "", err
	}

	logging.Debug("AWS clients created", zap.String("region", cfg.Region), zap.String("pricingRegion", pricingRegion))
	return &Clients{
		EC2:     ec2.NewFromConfig(cfg),
		IAM:     iam.NewFromConfig(cfg),
		STS:     sts.NewFromConfig(cfg),
		Pricing: pricingClient,
	}, cfg.Region, nil
}
