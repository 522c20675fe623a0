package dto

import "price-prediction-service/internal/core/domain"

// DefaultModel is used when a generic prediction request names no model.
const DefaultModel = "dummy"

type PredictionRequest struct {
	Model    *string        `json:"model"`
	Features map[string]any `json:"features"`
}

// ModelName returns the requested model or DefaultModel when the field is absent.
func (r PredictionRequest) ModelName() string {
	if r.Model == nil {
		return DefaultModel
	}
	return *r.Model
}

type PredictionResponse struct {
	Model      string         `json:"model"`
	Prediction any            `json:"prediction"`
	Details    map[string]any `json:"details"`
}

type RealEstatePredictionRequest struct {
	Location  string  `json:"location" binding:"required,oneof=Vashi Nerul Kharghar Panvel"`
	Area      float64 `json:"area" binding:"required,gt=0"`
	BHK       int     `json:"bhk" binding:"required,min=1,max=5"`
	Bathrooms int     `json:"bathrooms" binding:"required,min=1,max=5"`
	Age       *int    `json:"age" binding:"required,min=0,max=50"`
	Parking   *bool   `json:"parking" binding:"required"`
}

func (r RealEstatePredictionRequest) ToRawFeatures() domain.RawFeatures {
	raw := domain.RawFeatures{
		Location:  r.Location,
		Area:      r.Area,
		BHK:       r.BHK,
		Bathrooms: r.Bathrooms,
	}
	if r.Age != nil {
		raw.Age = *r.Age
	}
	if r.Parking != nil {
		raw.Parking = *r.Parking
	}
	return raw
}

type RealEstatePredictionResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	PricePerSqft   float64 `json:"price_per_sqft"`
	MarketStatus   string  `json:"market_status"`
}

func ToRealEstatePredictionResponse(r *domain.PredictionResult) RealEstatePredictionResponse {
	return RealEstatePredictionResponse{
		PredictedPrice: r.PredictedPrice,
		PricePerSqft:   r.PricePerSqft,
		MarketStatus:   string(r.MarketStatus),
	}
}

type ListModelsResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}
