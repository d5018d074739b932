// Package dijkstra defines the result types and configuration options
// for single-source shortest paths over the route network.
//
// Distances are great-circle kilometres summed along routes. An airport the
// source cannot reach has an explicit Unreachable distance rather than an
// infinity sentinel, so callers never do arithmetic on "no path".
package dijkstra

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/airgraph/core"
)

// DefaultFarthestLimit is the number of airports FarthestNodes returns when k <= 0.
const DefaultFarthestLimit = 10

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilResult indicates that ReconstructPath was given a nil *Result.
	ErrNilResult = errors.New("dijkstra: result is nil")

	// ErrSourceMismatch indicates that ReconstructPath was asked for a source
	// other than the one the Result was computed from.
	ErrSourceMismatch = errors.New("dijkstra: source does not match result")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Distance is a tagged shortest-path length: either a finite number of km or
// unreachable. The zero value is Unreachable.
type Distance struct {
	km        float64
	reachable bool
}

// Unreachable returns the distance of an airport with no path from the source.
func Unreachable() Distance { return Distance{} }

// Finite returns a reachable distance of km kilometres.
func Finite(km float64) Distance { return Distance{km: km, reachable: true} }

// Km returns the distance and true, or (0, false) when unreachable.
func (d Distance) Km() (float64, bool) { return d.km, d.reachable }

// IsReachable reports whether a path exists.
func (d Distance) IsReachable() bool { return d.reachable }

// String renders "123.45 km" or "unreachable".
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}

	return fmt.Sprintf("%.2f km", d.km)
}

// MarshalJSON encodes a reachable distance as a number and an unreachable one as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.reachable {
		return []byte("null"), nil
	}

	return json.Marshal(d.km)
}

// Options configures the behavior of ShortestPaths.
//
// MaxDistance – airports whose shortest distance would exceed this cap are
// left unreachable. Must be >= 0. Default is math.MaxFloat64 (no cap).
type Options struct {
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold in km.
// A negative or NaN value is surfaced as ErrBadMaxDistance by ShortestPaths.
func WithMaxDistance(km float64) Option {
	return func(o *Options) {
		if km < 0 || math.IsNaN(km) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, km)
			return
		}
		o.MaxDistance = km
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxFloat64}
}

// Result is the single-source outcome of ShortestPaths. It is immutable and
// tied to the Graph snapshot it was computed on.
type Result struct {
	g      *core.Graph
	source int
	dist   []float64 // valid only where reached[i]
	reach  []bool
	prev   []int // -1 for the source and unreachable airports
}

// Source returns the code the result was computed from.
func (r *Result) Source() string { return r.g.CodeAt(r.source) }

// DistanceTo returns the shortest distance from the source to code.
// Returns core.ErrUnknownCode for an unregistered code.
func (r *Result) DistanceTo(code string) (Distance, error) {
	i, ok := r.g.Index(code)
	if !ok {
		return Distance{}, core.UnknownCode(code)
	}

	return r.distanceAt(i), nil
}

// PredecessorOf returns the airport preceding code on its shortest path.
// ok is false for the source itself and for unreachable airports.
func (r *Result) PredecessorOf(code string) (pred string, ok bool, err error) {
	i, found := r.g.Index(code)
	if !found {
		return "", false, core.UnknownCode(code)
	}
	if r.prev[i] < 0 {
		return "", false, nil
	}

	return r.g.CodeAt(r.prev[i]), true, nil
}

// Distances returns a copy of every airport's distance, reachable or not.
func (r *Result) Distances() map[string]Distance {
	out := make(map[string]Distance, len(r.dist))
	for i := range r.dist {
		out[r.g.CodeAt(i)] = r.distanceAt(i)
	}

	return out
}

// Predecessors returns code -> predecessor for every reachable airport except
// the source. Codes absent from the map have no predecessor.
func (r *Result) Predecessors() map[string]string {
	out := make(map[string]string, len(r.prev))
	for i, p := range r.prev {
		if p >= 0 {
			out[r.g.CodeAt(i)] = r.g.CodeAt(p)
		}
	}

	return out
}

func (r *Result) distanceAt(i int) Distance {
	if !r.reach[i] {
		return Unreachable()
	}

	return Finite(r.dist[i])
}

// Ranked is one FarthestNodes entry.
type Ranked struct {
	Code     string  `json:"code"`
	Distance float64 `json:"distance_km"`
}

// Leg is one hop of an Itinerary.
type Leg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance_km"`
}

// Itinerary is a reconstructed shortest route between two airports.
// An unreachable destination yields Reachable == false and no legs.
type Itinerary struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path"`
	Legs      []Leg    `json:"legs"`
	Total     Distance `json:"total_km"`
}
