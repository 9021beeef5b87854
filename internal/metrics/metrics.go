// Package metrics exports conversion statistics to Prometheus.
package metrics

import (
	"context"
	"net/http"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values of enfa_conversions_total.
const (
	OutcomeConverted = "converted"
	OutcomeNoEpsilon = "no_epsilon"
	OutcomeFailed    = "failed"
)

// Metrics owns a registry with the converter's collectors.
type Metrics struct {
	Registry *prometheus.Registry

	conversions *prometheus.CounterVec
	duration    prometheus.Histogram
	states      prometheus.Histogram
}

// New registers the collectors on a fresh registry, along with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enfa_conversions_total",
			Help: "Conversions run, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "enfa_conversion_duration_seconds",
			Help:    "Time spent removing ε-transitions.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		states: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "enfa_automaton_states",
			Help:    "Number of states of converted automata.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	m.Registry.MustRegister(
		m.conversions,
		m.duration,
		m.states,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Hooks returns converter hooks that feed the collectors.
func (m *Metrics) Hooks() domain.ConversionHooks {
	return domain.ConversionHooks{
		OnConvertDone: m.observe,
	}
}

func (m *Metrics) observe(_ context.Context, ev *domain.ConversionEvent) {
	outcome := OutcomeConverted
	switch {
	case ev.Err != nil:
		outcome = OutcomeFailed
	case !ev.Epsilon:
		outcome = OutcomeNoEpsilon
	}
	m.conversions.WithLabelValues(outcome).Inc()
	if ev.Err != nil {
		return
	}
	m.duration.Observe(ev.Duration.Seconds())
	m.states.Observe(float64(ev.States))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
