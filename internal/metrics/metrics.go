// Package metrics records compiler activity as Prometheus metrics.
//
// Metrics live on a private registry so the CLI can dump them to a node
// exporter textfile after a run without pulling in global collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Recorder holds the tierplan collectors.
type Recorder struct {
	registry *prometheus.Registry

	compileTotal     *prometheus.CounterVec
	compileDuration  *prometheus.HistogramVec
	planResources    *prometheus.GaugeVec
	diagnosticsTotal *prometheus.CounterVec
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		compileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tierplan",
				Name:      "compile_total",
				Help:      "Total number of plan compilations by environment and result",
			},
			[]string{"environment", "result"},
		),
		compileDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tierplan",
				Name:      "compile_duration_seconds",
				Help:      "Duration of plan compilation in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"environment"},
		),
		planResources: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "tierplan",
				Subsystem: "plan",
				Name:      "resources",
				Help:      "Number of resources in the last compiled plan by state",
			},
			[]string{"environment", "state"},
		),
		diagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tierplan",
				Subsystem: "plan",
				Name:      "diagnostics_total",
				Help:      "Total number of plan diagnostics by code",
			},
			[]string{"code"},
		),
	}
	r.registry.MustRegister(r.compileTotal, r.compileDuration, r.planResources, r.diagnosticsTotal)
	return r
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordCompile records one compilation. p may be nil when err is set.
func (r *Recorder) RecordCompile(environment string, p *plan.Plan, err error, duration time.Duration) {
	if r == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	r.compileTotal.WithLabelValues(environment, result).Inc()
	r.compileDuration.WithLabelValues(environment).Observe(duration.Seconds())

	if p == nil {
		return
	}
	r.planResources.WithLabelValues(environment, "active").Set(float64(len(p.Active())))
	r.planResources.WithLabelValues(environment, "inactive").Set(float64(len(p.Inactive())))
	for _, d := range p.Diagnostics {
		r.diagnosticsTotal.WithLabelValues(d.Code).Inc()
	}
}

// WriteTextfile writes all metrics to path in the text exposition format
// read by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
