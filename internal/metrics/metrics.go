package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ergung/position-calculator/risk"
)

// Recorder counts calculations. Each Recorder owns its registry so servers
// and tests do not share state through the global one.
type Recorder struct {
	registry      *prometheus.Registry
	calculations  *prometheus.CounterVec
	failures      *prometheus.CounterVec
	positionValue prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "possize_calculations_total",
				Help: "Successful position size calculations (by mode and side).",
			},
			[]string{"mode", "side"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "possize_validation_failures_total",
				Help: "Rejected calculation requests (by offending field).",
			},
			[]string{"field"},
		),
		positionValue: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "possize_position_value",
				Help:    "Position value of successful calculations, in quote currency.",
				Buckets: prometheus.ExponentialBuckets(10, 10, 7),
			},
		),
	}
	r.registry.MustRegister(r.calculations, r.failures, r.positionValue)
	return r
}

func (r *Recorder) Observe(res risk.Result) {
	r.calculations.WithLabelValues(res.Mode.String(), res.Side()).Inc()
	r.positionValue.Observe(res.PositionValue)
}

func (r *Recorder) Fail(field string) {
	if field == "" {
		field = "unknown"
	}
	r.failures.WithLabelValues(field).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
