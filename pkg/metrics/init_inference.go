package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInferenceMetrics() {
	r.ClassificationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "famgraph_classifications_total",
			Help: "Total number of kinship classifications",
		},
		[]string{"mode", "status"},
	)

	r.ClassificationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "famgraph_classification_duration_seconds",
			Help:    "Kinship classification duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.LayoutsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "famgraph_layouts_total",
			Help: "Total number of layout computations",
		},
		[]string{"status"},
	)

	r.LayoutDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "famgraph_layout_duration_seconds",
			Help:    "Layout computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.LayoutNodesPerChart = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "famgraph_layout_nodes_per_chart",
			Help:    "Number of nodes emitted per layout computation",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)
}
