package pricing

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/pkg/errs"
)

// ProductsAPI is the part of the Pricing client the price lookups use
type ProductsAPI interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

// NewClient creates a Pricing API client bound to the pricing hub region.
// The Pricing API is only served from a few regions (us-east-1, ap-south-1,
// eu-central-1), which need not be the region being priced.
func NewClient(ctx context.Context, pricingRegion string, optFns ...func(*config.LoadOptions) error) (*pricing.Client, error) {
	opts := append([]func(*config.LoadOptions) error{config.WithRegion(pricingRegion)}, optFns...)
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config for pricing API: %w", err)
	}

	logging.Debug("AWS Pricing API initialized",
		zap.String("region", pricingRegion),
		zap.String("endpoint", fmt.Sprintf("https://api.pricing.%s.amazonaws.com", pricingRegion)))
	return pricing.NewFromConfig(cfg), nil
}

// GetPricingProducts returns every price list document matching the filters,
// following pagination to the end
func GetPricingProducts(ctx context.Context, client ProductsAPI, serviceCode string, filters []types.Filter) ([]string, error) {
	input := &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     filters,
		MaxResults:  aws.Int32(100),
	}

	var priceList []string
	for {
		resp, err := client.GetProducts(ctx, input)
		if err != nil {
			return nil, errs.Service("GetProducts", err)
		}
		priceList = append(priceList, resp.PriceList...)

		if resp.NextToken == nil || *resp.NextToken == "" {
			break
		}
		input.NextToken = resp.NextToken
	}

	return priceList, nil
}
