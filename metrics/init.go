package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.LoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by outcome",
		},
		[]string{"status"},
	)

	r.LoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Time to read and build a dataset",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	r.GraphAirports = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_airports",
		Help:      "Airports in the current snapshot",
	})

	r.GraphRoutes = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_routes",
		Help:      "Undirected routes in the current snapshot",
	})

	r.GraphGeneration = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_generation",
		Help:      "Successful dataset loads since start",
	})
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Graph queries by kind and outcome",
		},
		[]string{"query", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Graph query execution time in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query"},
	)
}
