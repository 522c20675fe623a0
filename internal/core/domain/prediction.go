package domain

type MarketStatus string

const (
	MarketStatusBelow   MarketStatus = "Below Market"
	MarketStatusAverage MarketStatus = "Average"
	MarketStatusAbove   MarketStatus = "Above Market"
)

// Market band multipliers applied to the average price per sqft.
const (
	BelowMarketFactor = 0.90
	AboveMarketFactor = 1.10
)

// RawFeatures is one property description as received from the caller.
type RawFeatures struct {
	Location  string
	Area      float64
	BHK       int
	Bathrooms int
	Age       int
	Parking   bool
}

type PredictionResult struct {
	PredictedPrice float64      `json:"predicted_price"`
	PricePerSqft   float64      `json:"price_per_sqft"`
	MarketStatus   MarketStatus `json:"market_status"`
}

// DummyResult is what the smoke-test pipeline returns.
type DummyResult struct {
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

// RealEstateMetadata describes what the loaded bundle accepts.
type RealEstateMetadata struct {
	Locations      []string    `json:"locations"`
	FeatureColumns []string    `json:"feature_columns"`
	MarketStats    MarketStats `json:"market_stats"`
}
