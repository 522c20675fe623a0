package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-prediction-service/internal/core/domain"
	"price-prediction-service/internal/testutil"
)

func TestScale(t *testing.T) {
	bundle := testutil.Bundle()

	scaled, err := Scale([]float64{1000, 2, 2, 5, 1, 0, 0, 0, 1}, bundle)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, -1, 1, -0.5, -0.5, -0.5, 1.5}, scaled)
}

func TestScale_LengthMismatch(t *testing.T) {
	_, err := Scale([]float64{1, 2, 3}, testutil.Bundle())
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestApply(t *testing.T) {
	bundle := testutil.Bundle()

	price, err := Apply([]float64{0, 0, 0, -1, 1, -0.5, -0.5, -0.5, 1.5}, bundle)
	require.NoError(t, err)
	assert.Equal(t, testutil.GoldenPrice, price)

	price, err = Apply(make([]float64, len(bundle.Weights)), bundle)
	require.NoError(t, err)
	assert.Equal(t, bundle.Bias, price)
}

func TestApply_LengthMismatch(t *testing.T) {
	_, err := Apply([]float64{1}, testutil.Bundle())
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestScaleApply_Deterministic(t *testing.T) {
	bundle := testutil.Bundle()
	encoded := []float64{1234.5, 3, 2, 17, 0, 0, 1, 0, 0}

	first, err := Scale(encoded, bundle)
	require.NoError(t, err)
	second, err := Scale(encoded, bundle)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p1, err := Apply(first, bundle)
	require.NoError(t, err)
	p2, err := Apply(second, bundle)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	// input untouched
	assert.Equal(t, []float64{1234.5, 3, 2, 17, 0, 0, 1, 0, 0}, encoded)
}
