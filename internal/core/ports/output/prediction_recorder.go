package ports

import "time"

// PredictionRecorder receives one observation per pipeline invocation.
type PredictionRecorder interface {
	ObservePrediction(model, outcome string, elapsed time.Duration)
	ObserveMarketStatus(status string)
	ObserveArtifactLoad(source string, err error)
}

// Prediction outcomes reported to the recorder.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObservePrediction(string, string, time.Duration) {}
func (NopRecorder) ObserveMarketStatus(string)                      {}
func (NopRecorder) ObserveArtifactLoad(string, error)               {}
