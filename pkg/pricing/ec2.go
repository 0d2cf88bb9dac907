package pricing

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/pkg/errs"
)

// EC2OnDemandFilters returns the filter set selecting the shared-tenancy
// Linux on-demand product for an instance type in a region
func EC2OnDemandFilters(instanceType, regionCode string) []types.Filter {
	term := func(field, value string) types.Filter {
		return types.Filter{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String(field),
			Value: aws.String(value),
		}
	}

	return []types.Filter{
		term("instanceType", instanceType),
		term("regionCode", regionCode),
		term("tenancy", TenancyShared),
		term("preInstalledSw", PreInstalledSwNone),
		term("productFamily", ProductFamilyEC2),
		term("operatingSystem", OperatingSystem),
		term("capacitystatus", CapacityStatusUsed),
	}
}

// GetEC2OnDemandPrice returns the hourly on-demand price of an instance type.
// The query must match exactly one product; anything else means the filter
// set no longer identifies a single price and is reported as a
// DataAssumptionError.
func GetEC2OnDemandPrice(ctx context.Context, client ProductsAPI, instanceType, regionCode, currency string) (decimal.Decimal, error) {
	logging.Debug("querying on-demand price",
		zap.String("instanceType", instanceType),
		zap.String("regionCode", regionCode))

	priceList, err := GetPricingProducts(ctx, client, ServiceCodeEC2, EC2OnDemandFilters(instanceType, regionCode))
	if err != nil {
		return decimal.Zero, err
	}

	if len(priceList) != 1 {
		return decimal.Zero, errs.Assumption("pricing query matches exactly one product",
			"%d matches for %s in %s", len(priceList), instanceType, regionCode)
	}

	return ExtractOnDemandPrice(priceList[0], currency)
}
