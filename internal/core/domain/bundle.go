package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LocationPrefix is the one-hot column prefix produced by the training job.
const LocationPrefix = "Location_"

// Numeric feature columns as named in the training dataset.
const (
	ColumnArea      = "Area"
	ColumnBHK       = "BHK"
	ColumnBathrooms = "Bathrooms"
	ColumnAge       = "Age"
	ColumnParking   = "Parking"
)

var numericColumns = []string{ColumnArea, ColumnBHK, ColumnBathrooms, ColumnAge, ColumnParking}

// MarketStats are computed by the training job over the full dataset.
type MarketStats struct {
	AvgPrice        float64 `json:"avg_price"`
	AvgPricePerSqft float64 `json:"avg_price_per_sqft"`
}

// ArtifactBundle holds everything inference needs. Weights, ScalerMean and
// ScalerScale are positional and parallel to FeatureColumns.
// A bundle is never mutated after DecodeBundle returns it.
type ArtifactBundle struct {
	Weights         []float64   `json:"weights"`
	Bias            float64     `json:"bias"`
	ScalerMean      []float64   `json:"scaler_mean"`
	ScalerScale     []float64   `json:"scaler_scale"`
	FeatureColumns  []string    `json:"feature_columns"`
	LocationColumns []string    `json:"location_columns"`
	MarketStats     MarketStats `json:"market_stats"`

	columnIndex map[string]int
	locations   map[string]struct{}
}

// DecodeBundle parses a serialized bundle and checks its structural invariants.
func DecodeBundle(data []byte) (*ArtifactBundle, error) {
	var b ArtifactBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCorruptArtifact, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.index()
	return &b, nil
}

// Validate checks the invariants the numeric core relies on.
func (b *ArtifactBundle) Validate() error {
	n := len(b.FeatureColumns)
	if n == 0 {
		return fmt.Errorf("%w: no feature columns", ErrCorruptArtifact)
	}
	if len(b.Weights) != n || len(b.ScalerMean) != n || len(b.ScalerScale) != n {
		return fmt.Errorf("%w: %d feature columns but %d weights, %d scaler means, %d scaler scales",
			ErrCorruptArtifact, n, len(b.Weights), len(b.ScalerMean), len(b.ScalerScale))
	}

	seen := make(map[string]struct{}, n)
	for _, col := range b.FeatureColumns {
		if _, dup := seen[col]; dup {
			return fmt.Errorf("%w: duplicate feature column %q", ErrCorruptArtifact, col)
		}
		seen[col] = struct{}{}
	}
	for _, col := range numericColumns {
		if _, ok := seen[col]; !ok {
			return fmt.Errorf("%w: feature column %q missing", ErrCorruptArtifact, col)
		}
	}

	if len(b.LocationColumns) == 0 {
		return fmt.Errorf("%w: no location columns", ErrCorruptArtifact)
	}
	for _, col := range b.LocationColumns {
		if !strings.HasPrefix(col, LocationPrefix) {
			return fmt.Errorf("%w: location column %q lacks %q prefix", ErrCorruptArtifact, col, LocationPrefix)
		}
		if _, ok := seen[col]; !ok {
			return fmt.Errorf("%w: location column %q not in feature columns", ErrCorruptArtifact, col)
		}
	}

	for i, s := range b.ScalerScale {
		if s == 0 {
			return fmt.Errorf("%w: zero scale for column %q", ErrCorruptArtifact, b.FeatureColumns[i])
		}
	}
	if b.MarketStats.AvgPricePerSqft <= 0 {
		return fmt.Errorf("%w: average price per sqft must be positive", ErrCorruptArtifact)
	}
	return nil
}

func (b *ArtifactBundle) index() {
	b.columnIndex = make(map[string]int, len(b.FeatureColumns))
	for i, col := range b.FeatureColumns {
		b.columnIndex[col] = i
	}
	b.locations = make(map[string]struct{}, len(b.LocationColumns))
	for _, col := range b.LocationColumns {
		b.locations[col] = struct{}{}
	}
}

// ColumnIndex returns the position of a feature column.
func (b *ArtifactBundle) ColumnIndex(name string) (int, bool) {
	if b.columnIndex == nil {
		for i, col := range b.FeatureColumns {
			if col == name {
				return i, true
			}
		}
		return 0, false
	}
	i, ok := b.columnIndex[name]
	return i, ok
}

// HasLocationColumn reports whether col is one of the one-hot location columns.
func (b *ArtifactBundle) HasLocationColumn(col string) bool {
	if b.locations == nil {
		for _, loc := range b.LocationColumns {
			if loc == col {
				return true
			}
		}
		return false
	}
	_, ok := b.locations[col]
	return ok
}

// Locations returns the valid location names in bundle order.
func (b *ArtifactBundle) Locations() []string {
	names := make([]string, 0, len(b.LocationColumns))
	for _, col := range b.LocationColumns {
		names = append(names, strings.TrimPrefix(col, LocationPrefix))
	}
	return names
}
