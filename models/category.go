package models

// Category is static reference data for the browse pages.
type Category struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	Icon          string `bson:"icon" json:"icon"`
	Slug          string `bson:"slug" json:"slug"`
	ProviderCount int64  `bson:"provider_count" json:"providerCount"`
}

// Stat is a single marketing counter, keyed by name.
type Stat struct {
	Key   string `bson:"key" json:"key"`
	Value int64  `bson:"value" json:"value"`
}

// Stat keys surfaced on the landing page.
const (
	StatTotalServices  = "totalServices"
	StatTotalProviders = "totalProviders"
	StatTotalBookings  = "totalBookings"
)

// MarketStats is the landing-page counters response.
type MarketStats struct {
	TotalServices  int64 `json:"totalServices"`
	TotalProviders int64 `json:"totalProviders"`
	TotalBookings  int64 `json:"totalBookings"`
}
