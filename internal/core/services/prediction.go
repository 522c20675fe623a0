package services

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

// PredictionService is what the HTTP adapter calls. It dispatches through the
// registry and reports every outcome to the recorder.
type PredictionService struct {
	registry   *Registry
	realEstate *RealEstatePipeline
	recorder   ports.PredictionRecorder
}

func NewPredictionService(registry *Registry, realEstate *RealEstatePipeline, recorder ports.PredictionRecorder) *PredictionService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &PredictionService{
		registry:   registry,
		realEstate: realEstate,
		recorder:   recorder,
	}
}

// Predict runs the named model over a loosely typed feature map.
func (s *PredictionService) Predict(ctx context.Context, model string, features map[string]any) (any, error) {
	start := time.Now()
	result, err := s.registry.Predict(ctx, model, features)
	s.observe(model, start, features, result, err)
	return result, err
}

// PredictRealEstate runs the real-estate pipeline over already validated fields.
func (s *PredictionService) PredictRealEstate(ctx context.Context, raw domain.RawFeatures) (*domain.PredictionResult, error) {
	start := time.Now()
	result, err := s.realEstate.PredictFeatures(ctx, raw)
	s.observe(ModelRealEstate, start, raw, result, err)
	return result, err
}

func (s *PredictionService) Models() []string {
	return s.registry.Names()
}

func (s *PredictionService) RealEstateMetadata(ctx context.Context) (*domain.RealEstateMetadata, error) {
	return s.realEstate.Metadata(ctx)
}

func (s *PredictionService) observe(model string, start time.Time, input, result any, err error) {
	elapsed := time.Since(start)

	switch {
	case err == nil:
		s.recorder.ObservePrediction(model, ports.OutcomeSuccess, elapsed)
		if r, ok := result.(*domain.PredictionResult); ok {
			s.recorder.ObserveMarketStatus(string(r.MarketStatus))
		}
	case errors.Is(err, domain.ErrUnknownModel):
		// caller-chosen names must not become metric labels
		s.recorder.ObservePrediction("unknown", ports.OutcomeInvalid, elapsed)
	case domain.IsValidation(err):
		s.recorder.ObservePrediction(model, ports.OutcomeInvalid, elapsed)
	case domain.IsUnavailable(err):
		s.recorder.ObservePrediction(model, ports.OutcomeUnavailable, elapsed)
	default:
		s.recorder.ObservePrediction(model, ports.OutcomeError, elapsed)
		log.WithFields(log.Fields{
			"model":      model,
			"input":      input,
			"latency_ms": elapsed.Milliseconds(),
		}).WithError(err).Error("prediction failed")
	}
}
