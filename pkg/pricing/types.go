package pricing

// Service codes and attribute values used by the EC2 on-demand price query
const (
	ServiceCodeEC2 = "AmazonEC2"

	TenancyShared      = "Shared"
	PreInstalledSwNone = "NA"
	ProductFamilyEC2   = "Compute Instance"
	OperatingSystem    = "Linux"
	CapacityStatusUsed = "Used"

	// DefaultCurrency is the pricePerUnit key read from price list documents
	DefaultCurrency = "USD"
)

// priceListItem is the part of a price list document the extraction reads.
// OnDemand and priceDimensions are keyed by service-generated offer term
// and rate codes.
type priceListItem struct {
	Product struct {
		SKU        string            `json:"sku"`
		Attributes map[string]string `json:"attributes"`
	} `json:"product"`
	Terms struct {
		OnDemand map[string]offerTerm `json:"OnDemand"`
	} `json:"terms"`
}

type offerTerm struct {
	SKU             string                    `json:"sku"`
	PriceDimensions map[string]priceDimension `json:"priceDimensions"`
}

type priceDimension struct {
	Unit         string            `json:"unit"`
	Description  string            `json:"description"`
	PricePerUnit map[string]string `json:"pricePerUnit"`
}
