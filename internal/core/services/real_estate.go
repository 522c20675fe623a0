package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"price-prediction-service/internal/core/domain"
)

// RealEstatePipeline predicts Navi Mumbai property prices from the bundle held
// by the artifact store.
type RealEstatePipeline struct {
	store *ArtifactStore
}

func NewRealEstatePipeline(store *ArtifactStore) *RealEstatePipeline {
	return &RealEstatePipeline{store: store}
}

// Predict extracts the property fields from a loosely typed map. Missing
// bathrooms, age and parking default to zero; missing location, area and bhk
// also default but are then rejected by validation.
func (p *RealEstatePipeline) Predict(ctx context.Context, features map[string]any) (any, error) {
	raw, err := extractRawFeatures(features)
	if err != nil {
		return nil, err
	}

	result, err := p.PredictFeatures(ctx, raw)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PredictFeatures runs encode, scale, apply and classify. Either every step
// succeeds or no result is returned.
func (p *RealEstatePipeline) PredictFeatures(ctx context.Context, raw domain.RawFeatures) (*domain.PredictionResult, error) {
	bundle, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(raw, bundle)
	if err != nil {
		return nil, err
	}
	scaled, err := Scale(encoded, bundle)
	if err != nil {
		return nil, err
	}
	price, err := Apply(scaled, bundle)
	if err != nil {
		return nil, err
	}
	pricePerSqft, status, err := Classify(price, raw.Area, bundle)
	if err != nil {
		return nil, err
	}

	return &domain.PredictionResult{
		PredictedPrice: round2(price),
		PricePerSqft:   round2(pricePerSqft),
		MarketStatus:   status,
	}, nil
}

// Metadata describes the locations and market averages of the loaded bundle.
func (p *RealEstatePipeline) Metadata(ctx context.Context) (*domain.RealEstateMetadata, error) {
	bundle, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.RealEstateMetadata{
		Locations:      bundle.Locations(),
		FeatureColumns: append([]string(nil), bundle.FeatureColumns...),
		MarketStats:    bundle.MarketStats,
	}, nil
}

func extractRawFeatures(features map[string]any) (domain.RawFeatures, error) {
	var (
		raw domain.RawFeatures
		err error
	)

	if raw.Location, err = cast.ToStringE(features["location"]); err != nil {
		return raw, invalidFeature("location", features["location"], err)
	}
	if raw.Area, err = cast.ToFloat64E(features["area"]); err != nil {
		return raw, invalidFeature("area", features["area"], err)
	}
	if raw.BHK, err = cast.ToIntE(features["bhk"]); err != nil {
		return raw, invalidFeature("bhk", features["bhk"], err)
	}
	if raw.Bathrooms, err = cast.ToIntE(features["bathrooms"]); err != nil {
		return raw, invalidFeature("bathrooms", features["bathrooms"], err)
	}
	if raw.Age, err = cast.ToIntE(features["age"]); err != nil {
		return raw, invalidFeature("age", features["age"], err)
	}
	parking, err := cast.ToIntE(features["parking"])
	if err != nil {
		return raw, invalidFeature("parking", features["parking"], err)
	}
	raw.Parking = parking != 0

	return raw, nil
}

func invalidFeature(name string, value any, err error) error {
	return fmt.Errorf("%w: %s=%v: %v", domain.ErrInvalidFeature, name, value, err)
}

// round2 rounds the exact binary value of v to cents, ties to even.
func round2(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, exactExponent).RoundBank(2).InexactFloat64()
}

// exactExponent is the smallest float64 exponent, so no precision is lost
// before rounding.
const exactExponent = -1074
