// File: methods_vertices.go
// Role: Airport registry queries (code-addressed and index-addressed).
//
// Determinism:
//   - Codes() returns codes in order of first appearance during Build.
package core

// HasAirport reports whether code is registered. Lookups are exact-match; callers
// normalize case before querying.
// Complexity: O(1).
func (g *Graph) HasAirport(code string) bool {
	_, ok := g.index[code]
	return ok
}

// Airport returns the registry entry for code, or ErrUnknownCode.
// Complexity: O(1).
func (g *Graph) Airport(code string) (Airport, error) {
	i, ok := g.index[code]
	if !ok {
		return Airport{}, UnknownCode(code)
	}

	return g.airports[i], nil
}

// Airports returns a copy of the registry keyed by code.
// Complexity: O(V).
func (g *Graph) Airports() map[string]Airport {
	out := make(map[string]Airport, len(g.airports))
	for _, a := range g.airports {
		out[a.Code] = a
	}

	return out
}

// Codes returns all airport codes in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Codes() []string {
	out := make([]string, len(g.codes))
	copy(out, g.codes)

	return out
}

// Index returns the dense arena index of code.
// Complexity: O(1).
func (g *Graph) Index(code string) (int, bool) {
	i, ok := g.index[code]
	return i, ok
}

// CodeAt returns the code stored at arena index i. i must be in [0, VertexCount()).
// Complexity: O(1).
func (g *Graph) CodeAt(i int) string { return g.codes[i] }

// AirportAt returns the airport stored at arena index i.
// Complexity: O(1).
func (g *Graph) AirportAt(i int) Airport { return g.airports[i] }
