// Package metrics exposes Prometheus metrics for the family graph
// service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordClassification records a kinship classification.
// mode is "age-gap" or "explicit", status is "ok" or "error".
func (r *Registry) RecordClassification(mode, status string, duration time.Duration) {
	r.ClassificationsTotal.WithLabelValues(mode, status).Inc()
	r.ClassificationDuration.Observe(duration.Seconds())
}

// RecordLayout records a layout computation
func (r *Registry) RecordLayout(status string, duration time.Duration, nodes int) {
	r.LayoutsTotal.WithLabelValues(status).Inc()
	r.LayoutDuration.Observe(duration.Seconds())
	r.LayoutNodesPerChart.Observe(float64(nodes))
}

// RecordCacheLookup records a registry cache hit or miss and the
// resulting cache size
func (r *Registry) RecordCacheLookup(hit bool, size int) {
	if hit {
		r.CacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		r.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	r.CacheEntries.Set(float64(size))
}

// Handler returns the Prometheus exposition handler for this registry
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
