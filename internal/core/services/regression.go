package services

import (
	"fmt"

	"price-prediction-service/internal/core/domain"
)

// Scale standardizes an encoded vector with the scaler fitted at training time.
func Scale(vector []float64, bundle *domain.ArtifactBundle) ([]float64, error) {
	if len(vector) != len(bundle.ScalerMean) || len(vector) != len(bundle.ScalerScale) {
		return nil, fmt.Errorf("%w: scale %d values with %d means and %d scales",
			domain.ErrInvariantViolation, len(vector), len(bundle.ScalerMean), len(bundle.ScalerScale))
	}

	out := make([]float64, len(vector))
	for i, v := range vector {
		out[i] = (v - bundle.ScalerMean[i]) / bundle.ScalerScale[i]
	}
	return out, nil
}

// Apply evaluates the linear model over a scaled vector.
func Apply(scaled []float64, bundle *domain.ArtifactBundle) (float64, error) {
	if len(scaled) != len(bundle.Weights) {
		return 0, fmt.Errorf("%w: apply %d weights to %d values",
			domain.ErrInvariantViolation, len(bundle.Weights), len(scaled))
	}

	price := bundle.Bias
	for i, x := range scaled {
		price += bundle.Weights[i] * x
	}
	return price, nil
}
