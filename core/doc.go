// Package core owns the airport route network: the airport registry and the
// undirected, distance-weighted adjacency structure every algorithm package reads.
//
// The Graph G = (V,E) is built once from a sequence of route records and is
// immutable afterwards:
//
//   - V: one Airport per distinct code, in order of first appearance.
//   - E: one undirected edge per unordered pair of codes, weighted by the
//     great-circle distance between the two airports (km, two decimals).
//   - A pair seen more than once keeps the weight of its last occurrence
//     (last-write-wins); there are no parallel edges and no self-loops.
//
// Storage layout (arena):
//
//	index[code]   -> dense vertex index i
//	codes[i]      -> code
//	airports[i]   -> Airport attributes
//	adj[i]        -> ordered []Neighbor{To, Weight}
//	slot[i][j]    -> position of j inside adj[i] (O(1) overwrite)
//
// Every edge is stored under both endpoints with the same weight, so
// Weight(u, v) == Weight(v, u) holds for every pair (symmetry invariant).
//
// Construction:
//
//	Build(seq iter.Seq2[RouteRecord, error]) (*Graph, error)
//	BuildFromRecords(records []RouteRecord) (*Graph, error)
//	FromEdges(edges []Edge) (*Graph, error)   // pre-weighted pairs
//
// A record that is missing a code, carries an out-of-range coordinate, or
// routes an airport to itself aborts the whole build with *IngestionError;
// no partially-built graph ever escapes. Store wraps a Graph snapshot and
// swaps it only after a successful Build, so a failed reload keeps the prior
// dataset.
//
// Read API (all O(1) unless noted):
//
//	VertexCount() int, EdgeCount() int
//	Codes() []string                         // O(V), insertion order
//	HasAirport(code) bool, Airport(code) (Airport, error)
//	Airports() map[string]Airport            // O(V) copy
//	Weight(u, v) (float64, bool)
//	Neighbors(code) ([]Link, error)          // O(deg) copy, insertion order
//	Adjacency() map[string]map[string]float64 // O(V+E) copy
//	Edges() []Edge                           // O(E), each pair once
//	Index(code) (int, bool), CodeAt(i) string, NeighborsAt(i) []Neighbor
//
// Concurrency:
//
//	A built Graph is never mutated, so any number of goroutines may read it.
//	Store serializes Load against Snapshot with a sync.RWMutex.
//
// Errors:
//
//	ErrUnknownCode       – a query referenced a code absent from the registry.
//	ErrIngestion         – matched by every *IngestionError via errors.Is.
//	ErrMissingField      – a required record field is empty.
//	ErrInvalidCoordinate – latitude/longitude outside the valid range or not finite.
//	ErrSelfLoop          – origin and destination codes are equal.
//	ErrNegativeWeight    – FromEdges got a negative or non-finite weight.
//	ErrNilSource         – Build was handed a nil record sequence.
package core
