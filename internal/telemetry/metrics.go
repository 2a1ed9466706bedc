package telemetry

import (
	"context"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts node executions on a private registry.
// The process is short-lived, so metrics are written once to a textfile instead of being served.
type Metrics struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	errors      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the node collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_node_invocations_total",
				Help: "Total number of node invocations",
			},
			[]string{"node"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flash_node_errors_total",
				Help: "Total number of failed node invocations",
			},
			[]string{"node"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flash_node_duration_seconds",
				Help:    "Duration of node invocations",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"node"},
		),
	}
	m.registry.MustRegister(m.invocations, m.errors, m.duration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.invocations.WithLabelValues(e.NodeID).Inc()
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			m.duration.WithLabelValues(e.NodeID).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.errors.WithLabelValues(e.NodeID).Inc()
			}
		},
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
