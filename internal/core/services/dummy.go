package services

import (
	"context"
	"encoding/json"

	"price-prediction-service/internal/core/domain"
)

// DummyPipeline sums the numeric feature values. It exists to smoke-test the
// dispatch path and is not a model.
type DummyPipeline struct{}

func (DummyPipeline) Predict(_ context.Context, features map[string]any) (any, error) {
	var (
		sum   float64
		found bool
	)
	for _, value := range features {
		if v, ok := numericValue(value); ok {
			sum += v
			found = true
		}
	}

	if !found {
		return domain.DummyResult{Value: 0, Message: "No numeric features provided."}, nil
	}
	return domain.DummyResult{Value: sum, Message: "Dummy prediction is the sum of numeric features."}, nil
}

// numericValue accepts Go number types and booleans (true is 1). Numeric
// strings do not count.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
