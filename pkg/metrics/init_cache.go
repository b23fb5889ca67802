package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCacheMetrics() {
	r.CacheLookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "famgraph_cache_lookups_total",
			Help: "Total number of registry cache lookups",
		},
		[]string{"result"},
	)

	r.CacheEvictionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "famgraph_cache_evictions_total",
			Help: "Total number of registry cache evictions",
		},
	)

	r.CacheEntries = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "famgraph_cache_entries",
			Help: "Current number of entries in the registry cache",
		},
	)
}
