package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-prediction-service/internal/core/domain"
	"price-prediction-service/internal/testutil"
)

func TestDecodeBundle(t *testing.T) {
	b, err := domain.DecodeBundle(testutil.BundleJSON(nil))
	require.NoError(t, err)

	assert.Len(t, b.FeatureColumns, 9)
	assert.Equal(t, 10000000.0, b.Bias)
	assert.Equal(t, testutil.GoldenAvgPerSqft, b.MarketStats.AvgPricePerSqft)
	assert.Equal(t, []string{"Kharghar", "Nerul", "Panvel", "Vashi"}, b.Locations())

	i, ok := b.ColumnIndex("Location_Vashi")
	assert.True(t, ok)
	assert.Equal(t, 8, i)
	assert.True(t, b.HasLocationColumn("Location_Nerul"))
	assert.False(t, b.HasLocationColumn("Location_Thane"))
}

func TestDecodeBundle_InvalidJSON(t *testing.T) {
	_, err := domain.DecodeBundle([]byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrCorruptArtifact)
}

func TestDecodeBundle_Invariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"weights length", func(m map[string]any) { m["weights"] = []float64{1, 2, 3} }},
		{"scaler mean length", func(m map[string]any) { m["scaler_mean"] = []float64{1} }},
		{"scaler scale length", func(m map[string]any) { m["scaler_scale"] = []float64{} }},
		{"location not a feature", func(m map[string]any) {
			m["location_columns"] = []string{"Location_Vashi", "Location_Thane"}
		}},
		{"location without prefix", func(m map[string]any) { m["location_columns"] = []string{"Area"} }},
		{"no locations", func(m map[string]any) { m["location_columns"] = []string{} }},
		{"zero scale", func(m map[string]any) {
			m["scaler_scale"] = []float64{500, 1, 1, 0, 0.5, 0.5, 0.5, 0.5, 0.5}
		}},
		{"missing numeric column", func(m map[string]any) {
			m["feature_columns"] = []string{
				"Area", "BHK", "Baths", "Age", "Parking",
				"Location_Kharghar", "Location_Nerul", "Location_Panvel", "Location_Vashi",
			}
		}},
		{"non-positive market average", func(m map[string]any) {
			m["market_stats"] = map[string]any{"avg_price": 1.0, "avg_price_per_sqft": 0.0}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.BundleMap()
			tt.mutate(m)

			_, err := domain.DecodeBundle(testutil.BundleJSON(m))
			assert.ErrorIs(t, err, domain.ErrCorruptArtifact)
		})
	}
}

func TestArtifactBundle_ColumnIndexWithoutDecode(t *testing.T) {
	b := &domain.ArtifactBundle{
		FeatureColumns:  []string{"Area", "Location_Vashi"},
		LocationColumns: []string{"Location_Vashi"},
	}

	i, ok := b.ColumnIndex("Location_Vashi")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, b.HasLocationColumn("Location_Vashi"))
}
