// Package core defines the Airport, RouteRecord and Graph types, the ingestion
// error model, and the sentinel errors shared by the algorithm packages.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airgraph/geo"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownCode indicates a query referenced a code absent from the airport registry.
	ErrUnknownCode = errors.New("core: unknown airport code")

	// ErrIngestion is matched (errors.Is) by every *IngestionError.
	ErrIngestion = errors.New("core: ingestion failed")

	// ErrMissingField indicates a required route record field is empty.
	ErrMissingField = errors.New("core: missing required field")

	// ErrInvalidCoordinate indicates a latitude/longitude that is not finite or out of range.
	ErrInvalidCoordinate = errors.New("core: invalid coordinate")

	// ErrSelfLoop indicates a route whose origin and destination codes are equal.
	ErrSelfLoop = errors.New("core: route origin equals destination")

	// ErrNegativeWeight indicates a pre-weighted edge with a negative, NaN or infinite weight.
	ErrNegativeWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrNilSource indicates Build was called with a nil record sequence.
	ErrNilSource = errors.New("core: record source is nil")
)

// Endpoint is one side of a route record: the airport code plus the attributes
// registered for it the first time the code is seen.
type Endpoint struct {
	Code    string  `json:"code" validate:"required"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// RouteRecord is one ingested route between two geocoded airports.
type RouteRecord struct {
	Origin      Endpoint `json:"origin"`
	Destination Endpoint `json:"destination"`
}

// Airport is an immutable registry entry.
type Airport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
}

// Coord returns the airport position.
func (a Airport) Coord() geo.Coord { return geo.Coord{Lat: a.Lat, Lon: a.Lon} }

// Neighbor is an arena-indexed adjacency entry.
type Neighbor struct {
	To     int     // dense vertex index of the neighbor
	Weight float64 // great-circle distance in km
}

// Link is a code-addressed adjacency entry handed to presentation layers.
type Link struct {
	Code   string  `json:"code"`
	Weight float64 `json:"weight"`
}

// Edge is an undirected weighted pair of airport codes.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	VertexCount int     `json:"vertices"`
	EdgeCount   int     `json:"edges"`
	TotalWeight float64 `json:"total_weight_km"`
	MaxDegree   int     `json:"max_degree"`
	Hub         string  `json:"hub,omitempty"` // code with MaxDegree; first in insertion order on ties
}

// Graph is the immutable, arena-backed airport network.
//
// All slices are indexed by the dense vertex index assigned in order of first
// appearance. slot[u][v] records where v sits inside adj[u], which lets a repeated
// pair overwrite its weight in place.
type Graph struct {
	index    map[string]int
	codes    []string
	airports []Airport
	adj      [][]Neighbor
	slot     []map[int]int
	edges    int // unordered pairs
}

// NewGraph returns an empty Graph. Build is the only way to populate one.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// IngestionError reports the record (and field, when known) that made a Build fail.
type IngestionError struct {
	// Index is the 0-based record position in the input sequence; -1 when the
	// sequence itself is unusable.
	Index int
	// Line is the 1-based source line when the producer knows it (CSV), else 0.
	Line int
	// Field names the offending field, e.g. "origin.code"; empty when unknown.
	Field string
	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *IngestionError) Error() string {
	msg := "core: ingestion failed"
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s at record %d", msg, e.Index)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s, field %q", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap exposes the cause to errors.Is/As.
func (e *IngestionError) Unwrap() error { return e.Err }

// Is makes every *IngestionError match ErrIngestion.
func (e *IngestionError) Is(target error) bool { return target == ErrIngestion }

// UnknownCode wraps ErrUnknownCode with the offending code. Algorithm packages
// use it so every lookup failure reads the same way.
func UnknownCode(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCode, code)
}
