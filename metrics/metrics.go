// SPDX-License-Identifier: MIT
// Package: latgen/metrics

// Package metrics collects generation statistics in a Prometheus registry.
//
// latgen is a batch tool, so nothing is served over HTTP; WriteTextfile dumps
// the registry in the node-exporter textfile format instead.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// UnknownTopology replaces the topology label of generations that asked for an
// unregistered policy, keeping the label set bounded by the registry.
const UnknownTopology = "unknown"

// Latency lookup outcome labels.
const (
	LookupHit   = "hit"
	LookupError = "error"
)

// Registry holds all latgen metrics.
type Registry struct {
	registry *prometheus.Registry

	GenerationsTotal      *prometheus.CounterVec
	ConnectionsGenerated  prometheus.Histogram
	LatencyLookupsTotal   *prometheus.CounterVec
	BandwidthSamplesTotal prometheus.Counter
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "latgen_generations_total",
			Help: "Total number of topology generations",
		},
		[]string{"topology", "status"},
	)

	r.ConnectionsGenerated = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "latgen_connections_generated",
			Help:    "Number of connections produced per generation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.LatencyLookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "latgen_latency_lookups_total",
			Help: "Total number of city latency lookups",
		},
		[]string{"result"}, // hit, error
	)

	r.BandwidthSamplesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "latgen_bandwidth_samples_total",
			Help: "Total number of bandwidth samples drawn",
		},
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordGeneration records one generation and, on success, its size.
func (r *Registry) RecordGeneration(topology string, connections int, err error) {
	if err != nil {
		r.GenerationsTotal.WithLabelValues(topology, StatusError).Inc()
		return
	}
	r.GenerationsTotal.WithLabelValues(topology, StatusOK).Inc()
	r.ConnectionsGenerated.Observe(float64(connections))
}

// RecordLookup records one latency lookup.
func (r *Registry) RecordLookup(err error) {
	if err != nil {
		r.LatencyLookupsTotal.WithLabelValues(LookupError).Inc()
		return
	}
	r.LatencyLookupsTotal.WithLabelValues(LookupHit).Inc()
}

// RecordSamples adds n drawn bandwidth samples.
func (r *Registry) RecordSamples(n int) {
	r.BandwidthSamplesTotal.Add(float64(n))
}

// WriteTextfile writes the registry to path in the textfile collector format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}
	return nil
}
