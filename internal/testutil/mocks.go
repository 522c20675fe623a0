package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockArtifactSource is a mock of ports.ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArtifactSource) Describe() string {
	return "mock"
}

// MockPipeline is a mock of ports.Pipeline.
type MockPipeline struct {
	mock.Mock
}

func (m *MockPipeline) Predict(ctx context.Context, features map[string]any) (any, error) {
	args := m.Called(ctx, features)
	return args.Get(0), args.Error(1)
}

// MockRecorder is a mock of ports.PredictionRecorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObservePrediction(model, outcome string, elapsed time.Duration) {
	m.Called(model, outcome, elapsed)
}

func (m *MockRecorder) ObserveMarketStatus(status string) {
	m.Called(status)
}

func (m *MockRecorder) ObserveArtifactLoad(source string, err error) {
	m.Called(source, err)
}
