// Package metrics holds the Prometheus collectors of an airgraph process.
//
// Every Registry owns a private prometheus.Registry, so tests and several
// servers in one process never collide on metric names. Collectors fall into
// three groups:
//
//   - http:  requests and latency per route template.
//   - graph: dataset loads, and the size and generation of the current snapshot.
//   - query: algorithm runs per query kind and outcome.
//
// Handler exposes the registry in the Prometheus text format.
package metrics
