package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the Prometheus collectors of the planner. A nil *Recorder
// is valid and records nothing, which keeps tests and the CLI free of
// metrics plumbing.
type Recorder struct {
	registry           *prometheus.Registry
	runs               *prometheus.CounterVec
	projectionFailures *prometheus.CounterVec
	externalFallbacks  *prometheus.CounterVec
	runDuration        prometheus.Histogram
}

// NewRecorder creates a recorder registered on its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_runs_total",
				Help: "Planner runs by result",
			},
			[]string{"result"},
		),
		projectionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_projection_failures_total",
				Help: "Platforms replaced by a zero KPI set",
			},
			[]string{"platform"},
		),
		externalFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_external_fallbacks_total",
				Help: "External collaborator calls replaced by a deterministic fallback",
			},
			[]string{"service"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "planner_run_duration_seconds",
				Help:    "Duration of a planner run in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}
	r.registry.MustRegister(r.runs, r.projectionFailures, r.externalFallbacks, r.runDuration)
	return r
}

// ObserveRun records a finished run.
func (r *Recorder) ObserveRun(failed bool, d time.Duration) {
	if r == nil {
		return
	}
	result := "ok"
	if failed {
		result = "error"
	}
	r.runs.WithLabelValues(result).Inc()
	r.runDuration.Observe(d.Seconds())
}

// ProjectionFailed records a platform whose projection failed.
func (r *Recorder) ProjectionFailed(platform string) {
	if r == nil {
		return
	}
	r.projectionFailures.WithLabelValues(platform).Inc()
}

// ExternalFallback records a collaborator call that was replaced.
func (r *Recorder) ExternalFallback(service string) {
	if r == nil {
		return
	}
	r.externalFallbacks.WithLabelValues(service).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
