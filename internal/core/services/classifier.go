package services

import (
	"fmt"

	"price-prediction-service/internal/core/domain"
)

// Classify derives the price per sqft and compares it with the market average.
// Boundaries are strict: a value exactly on a band edge is Average.
func Classify(price, area float64, bundle *domain.ArtifactBundle) (float64, domain.MarketStatus, error) {
	if area == 0 {
		return 0, "", fmt.Errorf("%w: classify with zero area", domain.ErrInvariantViolation)
	}

	pricePerSqft := price / area
	avg := bundle.MarketStats.AvgPricePerSqft

	switch {
	case pricePerSqft < avg*domain.BelowMarketFactor:
		return pricePerSqft, domain.MarketStatusBelow, nil
	case pricePerSqft > avg*domain.AboveMarketFactor:
		return pricePerSqft, domain.MarketStatusAbove, nil
	default:
		return pricePerSqft, domain.MarketStatusAverage, nil
	}
}
