package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ports "price-prediction-service/internal/core/ports/output"
)

// Recorder exports prediction and artifact-load metrics.
type Recorder struct {
	registry *prometheus.Registry

	predictions   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	marketStatus  *prometheus.CounterVec
	artifactLoads *prometheus.CounterVec
}

var _ ports.PredictionRecorder = (*Recorder)(nil)

// NewRecorder registers the collectors on a private registry so tests and
// multiple instances do not collide on the default one.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prediction_requests_total",
				Help: "Total number of prediction requests by model and outcome",
			},
			[]string{"model", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prediction_duration_seconds",
				Help:    "Prediction pipeline duration",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.02, 0.1, 0.5, 2},
			},
			[]string{"model"},
		),
		marketStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prediction_market_status_total",
				Help: "Real-estate predictions by market status",
			},
			[]string{"status"},
		),
		artifactLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_artifact_loads_total",
				Help: "Model artifact load attempts by source and result",
			},
			[]string{"source", "result"},
		),
	}

	r.registry.MustRegister(r.predictions, r.latency, r.marketStatus, r.artifactLoads)
	return r
}

func (r *Recorder) ObservePrediction(model, outcome string, elapsed time.Duration) {
	r.predictions.WithLabelValues(model, outcome).Inc()
	r.latency.WithLabelValues(model).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveMarketStatus(status string) {
	r.marketStatus.WithLabelValues(status).Inc()
}

func (r *Recorder) ObserveArtifactLoad(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.artifactLoads.WithLabelValues(source, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
