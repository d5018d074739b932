// Package airgraph is an in-memory flight-route graph engine: load a route
// dataset once, then answer connectivity, spanning-tree and distance queries
// against it.
//
// The network is undirected. Every airport is a vertex and every route is an
// edge weighted by the great-circle distance between its two airports.
//
// Packages:
//
//	geo/          haversine distance between two coordinates (km, two decimals)
//	core/         airport registry, arena-backed Graph, Build and the reloadable Store
//	ingest/       streaming CSV reader and writer for route datasets
//	bfs/          breadth-first walks, fewest-hop paths and connected components
//	dfs/          depth-first walks plus critical airports and routes
//	prim_kruskal/ minimum spanning tree per component (Prim) and forest (Kruskal)
//	dijkstra/     shortest distances, farthest airports and path reconstruction
//	matrix/       dense distance matrix and Floyd-Warshall cross-check
//	builder/      synthetic networks (chain, cycle, star, complete, random)
//	config/       YAML configuration with validation
//	metrics/      Prometheus collectors for loads, queries and HTTP traffic
//	server/       JSON HTTP API over a Store
//	cmd/airgraph  command-line front end
//
// A tiny network:
//
//	JFK───LHR
//	  \   /
//	   CDG───NRT        SYD───AKL
//
// has two components; CDG is the only critical airport, and CDG-NRT and
// SYD-AKL are critical routes.
//
//	go install github.com/katalvlaran/airgraph/cmd/airgraph@latest
package airgraph
