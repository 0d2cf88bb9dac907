package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/younsl/jaws/pkg/errs"
	"github.com/younsl/jaws/pkg/utils"
)

const assumptionPriceShape = "price list document has a single on-demand offer with a single price dimension"

// ExtractOnDemandPrice extracts the on-demand price in currency from a price
// list document. The offer term and the price dimension are each reached by
// taking the sole value of a single-entry mapping.
func ExtractOnDemandPrice(priceJSON, currency string) (decimal.Decimal, error) {
	var item priceListItem
	if err := utils.ParseJSON(priceJSON, &item); err != nil {
		return decimal.Zero, &errs.DataAssumptionError{Assumption: assumptionPriceShape, Err: err}
	}

	term, err := utils.SoleValue("terms.OnDemand", item.Terms.OnDemand)
	if err != nil {
		return decimal.Zero, &errs.DataAssumptionError{Assumption: assumptionPriceShape, Detail: item.Product.SKU, Err: err}
	}

	dimension, err := utils.SoleValue("priceDimensions", term.PriceDimensions)
	if err != nil {
		return decimal.Zero, &errs.DataAssumptionError{Assumption: assumptionPriceShape, Detail: item.Product.SKU, Err: err}
	}

	raw, ok := dimension.PricePerUnit[currency]
	if !ok {
		return decimal.Zero, errs.Assumption(assumptionPriceShape, "no %s price for sku %s", currency, item.Product.SKU)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &errs.DataAssumptionError{Assumption: assumptionPriceShape, Detail: "unparsable price " + raw, Err: err}
	}

	return price, nil
}
