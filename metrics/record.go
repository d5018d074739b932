package metrics

import (
	"strconv"
	"time"

	"github.com/katalvlaran/airgraph/core"
)

// RecordHTTPRequest records one served request. route is the route template,
// never the raw path, to keep label cardinality bounded.
func (r *Registry) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLoad records a dataset load. On success g is the new snapshot and
// generation the store generation after the swap; on failure the gauges keep
// describing the snapshot still being served.
func (r *Registry) RecordLoad(g *core.Graph, generation uint64, err error, duration time.Duration) {
	r.LoadDuration.Observe(duration.Seconds())
	if err != nil {
		r.LoadsTotal.WithLabelValues(StatusError).Inc()
		return
	}
	r.LoadsTotal.WithLabelValues(StatusOK).Inc()
	r.SetGraph(g, generation)
}

// SetGraph publishes the size of the served snapshot.
func (r *Registry) SetGraph(g *core.Graph, generation uint64) {
	r.GraphAirports.Set(float64(g.VertexCount()))
	r.GraphRoutes.Set(float64(g.EdgeCount()))
	r.GraphGeneration.Set(float64(generation))
}

// RecordQuery records one algorithm run.
func (r *Registry) RecordQuery(query, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(query, status).Inc()
	r.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}
