package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline-level prometheus collectors. A nil *Metrics is
// valid and records nothing, so tests can construct the service without a
// registry.
type Metrics struct {
	stageDuration *prometheus.HistogramVec
	inflight      prometheus.Gauge
}

// NewMetrics creates and registers the pipeline metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pipeline_stage_duration_seconds",
				Help:    "Duration of external pipeline stages.",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"tool", "status"},
		),
		inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pipeline_inflight",
				Help: "Number of pipelines currently running external tools.",
			},
		),
	}

	if err := reg.Register(m.stageDuration); err != nil {
		return nil, err
	}
	if err := reg.Register(m.inflight); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeStage(tool, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(tool, status).Observe(d.Seconds())
}

func (m *Metrics) pipelineStarted() {
	if m == nil {
		return
	}
	m.inflight.Inc()
}

func (m *Metrics) pipelineDone() {
	if m == nil {
		return
	}
	m.inflight.Dec()
}
