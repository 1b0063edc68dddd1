package observability

import (
	"errors"
	"net/http"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "menutree"

// Metrics holds the collectors fed by the editing and export hooks.
type Metrics struct {
	registry *prometheus.Registry

	Mutations      *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
	Exports        *prometheus.CounterVec
	ExportDuration prometheus.Histogram
	ExportButtons  prometheus.Histogram
	Sessions       prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry,
// together with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Total number of applied editing operations",
			},
			[]string{"op"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Total number of rejected editing operations",
			},
			[]string{"op", "reason"},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Total number of export runs",
			},
			[]string{"outcome"},
		),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Duration of export runs",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		ExportButtons: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_buttons",
			Help:      "Number of buttons per exported document",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Number of live editing sessions",
		}),
	}

	m.registry.MustRegister(
		m.Mutations,
		m.Rejections,
		m.Exports,
		m.ExportDuration,
		m.ExportButtons,
		m.Sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks returns editor hooks that record mutations and rejections.
func (m *Metrics) Hooks() editor.Hooks {
	return editor.Hooks{
		OnMutation: func(ev *editor.MutationEvent) {
			m.Mutations.WithLabelValues(string(ev.Op)).Inc()
		},
		OnRejected: func(op editor.Operation, _ string, err error) {
			m.Rejections.WithLabelValues(string(op), Reason(err)).Inc()
		},
	}
}

// ExportHook records export outcomes.
func (m *Metrics) ExportHook(ev *export.Event) {
	if ev.Err != nil {
		m.Exports.WithLabelValues("error").Inc()
		return
	}
	m.Exports.WithLabelValues("ok").Inc()
	m.ExportDuration.Observe(ev.Duration.Seconds())
	m.ExportButtons.Observe(float64(ev.Buttons))
}

// Reason maps an editing error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrInvalidMediaType):
		return "invalid_media_type"
	case errors.Is(err, domain.ErrResourceExhausted):
		return "resource_exhausted"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	default:
		return "other"
	}
}
