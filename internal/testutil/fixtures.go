package testutil

import (
	"encoding/json"

	"price-prediction-service/internal/core/domain"
)

// Golden bundle. Means and scales are chosen so every scaled value is exact:
// Vashi, 1000 sqft, 2 BHK, 2 baths, 5 years, parking scales to
// [0 0 0 -1 1 -0.5 -0.5 -0.5 1.5] and predicts 11,000,000 (11,000 per sqft).
const (
	GoldenPrice        = 11000000.0
	GoldenPricePerSqft = 11000.0
	GoldenAvgPerSqft   = 9000.0
)

// BundleMap returns the golden bundle as a mutable map so tests can corrupt it.
func BundleMap() map[string]any {
	return map[string]any{
		"weights":      []float64{4000000, 500000, 250000, -200000, 100000, -100000, 200000, -300000, 400000},
		"bias":         10000000.0,
		"scaler_mean":  []float64{1000, 2, 2, 10, 0.5, 0.25, 0.25, 0.25, 0.25},
		"scaler_scale": []float64{500, 1, 1, 5, 0.5, 0.5, 0.5, 0.5, 0.5},
		"feature_columns": []string{
			"Area", "BHK", "Bathrooms", "Age", "Parking",
			"Location_Kharghar", "Location_Nerul", "Location_Panvel", "Location_Vashi",
		},
		"location_columns": []string{"Location_Kharghar", "Location_Nerul", "Location_Panvel", "Location_Vashi"},
		"market_stats": map[string]any{
			"avg_price":          10500000.0,
			"avg_price_per_sqft": GoldenAvgPerSqft,
		},
	}
}

// BundleJSON serializes m, or the golden bundle when m is nil.
func BundleJSON(m map[string]any) []byte {
	if m == nil {
		m = BundleMap()
	}
	data, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	return data
}

// Bundle decodes the golden bundle.
func Bundle() *domain.ArtifactBundle {
	b, err := domain.DecodeBundle(BundleJSON(nil))
	if err != nil {
		panic(err)
	}
	return b
}

// VashiFeatures is the golden request.
func VashiFeatures() domain.RawFeatures {
	return domain.RawFeatures{
		Location:  "Vashi",
		Area:      1000,
		BHK:       2,
		Bathrooms: 2,
		Age:       5,
		Parking:   true,
	}
}
