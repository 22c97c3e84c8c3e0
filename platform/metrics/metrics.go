// Package metrics exposes Prometheus collectors for account administration.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "account_admin"

// Deletion outcomes.
const (
	OutcomeDeleted  = "deleted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder records account deletion outcomes.
type Recorder interface {
	ObserveDeletion(provider, outcome string)
	ObserveFailure(provider, kind string)
	ObserveLatency(provider string, d time.Duration)
}

// Metrics holds the collectors registered on a single registry.
type Metrics struct {
	registry  *prometheus.Registry
	deletions *prometheus.CounterVec
	failures  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		deletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_deletions_total",
			Help:      "Delete-user invocations by outcome.",
		}, []string{"provider", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_deletion_failures_total",
			Help:      "Failed delegated deletions by upstream error kind.",
		}, []string{"provider", "kind"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "user_deletion_duration_seconds",
			Help:      "Latency of the delegated delete call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
	}

	reg.MustRegister(
		m.deletions,
		m.failures,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveDeletion counts one invocation outcome.
func (m *Metrics) ObserveDeletion(provider, outcome string) {
	m.deletions.WithLabelValues(provider, outcome).Inc()
}

// ObserveFailure counts one failed delegated call.
func (m *Metrics) ObserveFailure(provider, kind string) {
	m.failures.WithLabelValues(provider, kind).Inc()
}

// ObserveLatency records the duration of one delegated call.
func (m *Metrics) ObserveLatency(provider string, d time.Duration) {
	m.latency.WithLabelValues(provider).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveDeletion(string, string)       {}
func (Nop) ObserveFailure(string, string)        {}
func (Nop) ObserveLatency(string, time.Duration) {}

var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = Nop{}
)
