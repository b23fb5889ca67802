package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the family graph service
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Inference Metrics
	ClassificationsTotal   *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	LayoutsTotal           *prometheus.CounterVec
	LayoutDuration         prometheus.Histogram
	LayoutNodesPerChart    prometheus.Histogram

	// Registry cache Metrics
	CacheLookupsTotal   *prometheus.CounterVec
	CacheEvictionsTotal prometheus.Counter
	CacheEntries        prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initInferenceMetrics()
	r.initCacheMetrics()
	return r
}

// PrometheusRegistry exposes the underlying registry for the exposition
// handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
