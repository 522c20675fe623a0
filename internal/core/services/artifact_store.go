package services

import (
	"context"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

// ArtifactStore loads the model bundle once and serves it read-only afterwards.
type ArtifactStore struct {
	source   ports.ArtifactSource
	recorder ports.PredictionRecorder

	// mu serializes first loads only; readers go through bundle.
	mu     sync.Mutex
	bundle atomic.Pointer[domain.ArtifactBundle]
}

func NewArtifactStore(source ports.ArtifactSource, recorder ports.PredictionRecorder) *ArtifactStore {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &ArtifactStore{source: source, recorder: recorder}
}

// Load returns the cached bundle, fetching it on first use. Concurrent first
// callers block on the mutex, so at most one first fetch is in flight. A failed
// fetch is not cached and the next call tries again.
func (s *ArtifactStore) Load(ctx context.Context) (*domain.ArtifactBundle, error) {
	if bundle := s.bundle.Load(); bundle != nil {
		return bundle, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bundle := s.bundle.Load(); bundle != nil {
		return bundle, nil
	}

	bundle, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.bundle.Store(bundle)
	return bundle, nil
}

// Reload fetches the bundle again and swaps it in. Readers keep the previous
// bundle while the fetch runs, and after it when the fetch fails.
func (s *ArtifactStore) Reload(ctx context.Context) error {
	bundle, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.bundle.Store(bundle)
	return nil
}

// Loaded reports whether a bundle is cached.
func (s *ArtifactStore) Loaded() bool {
	return s.bundle.Load() != nil
}

func (s *ArtifactStore) fetch(ctx context.Context) (*domain.ArtifactBundle, error) {
	logger := log.WithField("source", s.source.Describe())

	data, err := s.source.Fetch(ctx)
	if err != nil {
		s.recorder.ObserveArtifactLoad(s.source.Describe(), err)
		logger.WithError(err).Error("fetch model artifacts failed")
		return nil, err
	}

	bundle, err := domain.DecodeBundle(data)
	if err != nil {
		s.recorder.ObserveArtifactLoad(s.source.Describe(), err)
		logger.WithError(err).Error("decode model artifacts failed")
		return nil, err
	}

	s.recorder.ObserveArtifactLoad(s.source.Describe(), nil)
	logger.WithFields(log.Fields{
		"features":  bundle.FeatureColumns,
		"locations": bundle.Locations(),
	}).Info("model artifacts loaded")
	return bundle, nil
}
