package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastStatistic *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_analyses_total",
				Help: "Total number of analyses performed",
			},
			[]string{"endpoint", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairlens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastStatistic: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pairlens_last_adf_statistic",
				Help: "Last rolling ADF statistic computed for a pair",
			},
			[]string{"pair"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pairlens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records one completed analysis for a symbol.
func (r *Recorder) RecordAnalysis(endpoint, symbol string) {
	r.analysesTotal.WithLabelValues(endpoint, symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastStatistic records the latest rolling statistic for a pair.
func (r *Recorder) RecordLastStatistic(pair string, stat float64) {
	r.lastStatistic.WithLabelValues(pair).Set(stat)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
