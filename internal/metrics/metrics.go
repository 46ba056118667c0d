package metrics

import (
	"github.com/aero-sizing/wingweight/pkg/surrogate"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsEmitter records evaluation activity on a set of registered collectors
type MetricsEmitter struct {
	evaluationsTotal  *prometheus.CounterVec
	boundViolations   *prometheus.CounterVec
	lastEstimate      *prometheus.GaugeVec
	requestErrorTotal *prometheus.CounterVec
}

// InitMetricsAndEmitter registers all custom metrics with the provided registry
// and returns an emitter writing to them
func InitMetricsAndEmitter(registry prometheus.Registerer) *MetricsEmitter {
	m := &MetricsEmitter{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wingweight_evaluations_total",
				Help: "Total number of surrogate evaluations",
			},
			[]string{"model"},
		),
		boundViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wingweight_bound_violations_total",
				Help: "Total number of evaluated parameters outside the documented bounds",
			},
			[]string{"model", "parameter"},
		),
		lastEstimate: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wingweight_last_estimate_pounds",
				Help: "Most recent wing structural weight estimate",
			},
			[]string{"model"},
		),
		requestErrorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wingweight_request_errors_total",
				Help: "Total number of rejected evaluation requests",
			},
			[]string{"model", "error_type"},
		),
	}

	registry.MustRegister(m.evaluationsTotal)
	registry.MustRegister(m.boundViolations)
	registry.MustRegister(m.lastEstimate)
	registry.MustRegister(m.requestErrorTotal)
	return m
}

// EmitEvaluationMetrics records one evaluation and its advisory bound violations
func (m *MetricsEmitter) EmitEvaluationMetrics(model string, estimate float64, violations []surrogate.BoundViolation) {
	if m == nil {
		return
	}
	m.evaluationsTotal.With(prometheus.Labels{"model": model}).Inc()
	m.lastEstimate.With(prometheus.Labels{"model": model}).Set(estimate)
	for _, v := range violations {
		m.boundViolations.With(prometheus.Labels{"model": model, "parameter": v.Parameter}).Inc()
	}
}

// EmitErrorMetrics records a rejected request
func (m *MetricsEmitter) EmitErrorMetrics(model, errorType string) {
	if m == nil {
		return
	}
	m.requestErrorTotal.With(prometheus.Labels{"model": model, "error_type": errorType}).Inc()
}
