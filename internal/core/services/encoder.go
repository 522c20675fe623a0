package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"price-prediction-service/internal/core/domain"
)

// Encode turns raw property fields into a vector ordered exactly like
// bundle.FeatureColumns. Weights and scaler parameters are positional, so the
// order is what makes the prediction correct.
func Encode(raw domain.RawFeatures, bundle *domain.ArtifactBundle) ([]float64, error) {
	location := normalizeLocation(raw.Location)
	if location == "" {
		return nil, domain.ErrMissingLocation
	}
	if raw.Area <= 0 {
		return nil, domain.ErrInvalidArea
	}
	if raw.BHK <= 0 {
		return nil, domain.ErrInvalidBedroomCount
	}

	locationColumn := domain.LocationPrefix + location
	if !bundle.HasLocationColumn(locationColumn) {
		return nil, &domain.UnknownLocationError{Location: location, Valid: bundle.Locations()}
	}

	vector := make([]float64, len(bundle.FeatureColumns))

	parking := 0.0
	if raw.Parking {
		parking = 1
	}
	slots := []struct {
		column string
		value  float64
	}{
		{domain.ColumnArea, raw.Area},
		{domain.ColumnBHK, float64(raw.BHK)},
		{domain.ColumnBathrooms, float64(raw.Bathrooms)},
		{domain.ColumnAge, float64(raw.Age)},
		{domain.ColumnParking, parking},
		{locationColumn, 1},
	}
	for _, slot := range slots {
		i, ok := bundle.ColumnIndex(slot.column)
		if !ok {
			return nil, fmt.Errorf("%w: column %q missing from bundle", domain.ErrInvariantViolation, slot.column)
		}
		vector[i] = slot.value
	}

	return vector, nil
}

func normalizeLocation(location string) string {
	return norm.NFC.String(strings.TrimSpace(location))
}
