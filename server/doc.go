// Package server exposes a loaded route network over a JSON HTTP API.
//
// Endpoints (codes are case-insensitive and upper-cased before lookup):
//
//	GET  /v1/health                      liveness plus dataset generation
//	GET  /v1/graph/stats                 vertex/edge counts, total km, hub
//	GET  /v1/airports/:code              registry entry
//	GET  /v1/airports/:code/neighbors    direct routes with distances
//	GET  /v1/airports/:code/reach?hops=&max_leg_km=
//	                                     airports within a connection and range budget
//	GET  /v1/connectivity                components and is-connected flag
//	GET  /v1/critical                    articulation airports and bridge routes
//	GET  /v1/mst?method=&airport=        spanning forest, or the tree of one airport's component
//	GET  /v1/farthest/:code?k=           k farthest reachable airports
//	GET  /v1/path?from=&to=&mode=        shortest (mode=distance) or fewest-hop (mode=hops) route
//	POST /v1/reload                      rebuild the dataset; the old one stays on failure
//	GET  /metrics                        Prometheus exposition
//
// Status codes: 404 for an unknown airport, 400 for malformed query
// parameters, 422 for a reload rejected by ingestion. An unreachable
// destination is a 200 with "reachable": false.
//
// Each request reads one store snapshot, so a concurrent reload never mixes two
// datasets inside a response. Identical concurrent path queries against the
// same snapshot are computed once.
package server
