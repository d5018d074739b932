// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Graph construction from route records (the only mutating code path).
// Policy:
//   - Build is all-or-nothing: the first bad record discards the partial graph.
//   - Weights come from the record's own coordinates, not the registry entry.
//   - First registration of a code fixes its Airport attributes.
//   - A repeated unordered pair overwrites its weight under both endpoints.

package core

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/airgraph/geo"
)

// validate is the shared record validator. Field names follow the json tags so
// IngestionError.Field reads like "origin.latitude".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Build consumes seq and returns a freshly built Graph.
//
// Steps per record:
//  1. Surface any producer error as *IngestionError (index preserved).
//  2. Validate codes, coordinates and the no-self-loop rule.
//  3. Register unseen origin/destination codes.
//  4. Weight = geo.Distance(origin, destination); store it under both endpoints.
//
// Errors:
//   - *IngestionError wrapping ErrNilSource, ErrMissingField, ErrInvalidCoordinate,
//     ErrSelfLoop or the producer's own error. errors.Is(err, ErrIngestion) holds.
//
// Complexity: O(R) time for R records, O(V+E) space.
func Build(seq iter.Seq2[RouteRecord, error]) (*Graph, error) {
	if seq == nil {
		return nil, &IngestionError{Index: -1, Err: ErrNilSource}
	}

	g := NewGraph()
	var (
		i   int
		err error
	)
	for rec, recErr := range seq {
		if recErr != nil {
			err = asIngestionError(i, recErr)
			break
		}
		if field, vErr := validateRecord(&rec); vErr != nil {
			err = &IngestionError{Index: i, Field: field, Err: vErr}
			break
		}
		g.addRoute(&rec)
		i++
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// BuildFromRecords is Build over an in-memory slice.
func BuildFromRecords(records []RouteRecord) (*Graph, error) {
	return Build(Records(records))
}

// Records adapts a slice to the sequence shape Build consumes.
func Records(records []RouteRecord) iter.Seq2[RouteRecord, error] {
	return func(yield func(RouteRecord, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// FromEdges builds a Graph from pre-weighted edges, for callers that already hold
// distances (cached datasets, fixtures). Airports are registered with their code
// only. Edge semantics match Build: undirected, last-write-wins, no self-loops.
//
// Errors: *IngestionError wrapping ErrMissingField, ErrSelfLoop or ErrNegativeWeight.
func FromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	for i, e := range edges {
		switch {
		case e.From == "":
			return nil, &IngestionError{Index: i, Field: "from", Err: ErrMissingField}
		case e.To == "":
			return nil, &IngestionError{Index: i, Field: "to", Err: ErrMissingField}
		case e.From == e.To:
			return nil, &IngestionError{Index: i, Field: "to", Err: ErrSelfLoop}
		case !(e.Weight >= 0) || math.IsInf(e.Weight, 1):
			return nil, &IngestionError{Index: i, Field: "weight", Err: fmt.Errorf("%w: %v", ErrNegativeWeight, e.Weight)}
		}
		u := g.register(&Endpoint{Code: e.From})
		v := g.register(&Endpoint{Code: e.To})
		g.link(u, v, e.Weight)
	}

	return g, nil
}

// asIngestionError keeps a producer's *IngestionError (it usually knows the line
// and field better than we do) and wraps anything else.
func asIngestionError(index int, err error) error {
	var ie *IngestionError
	if errors.As(err, &ie) {
		return ie
	}

	return &IngestionError{Index: index, Err: err}
}

// Check validates a single record with the rules Build applies and returns the
// offending field path and cause, or ("", nil). Producers that know source
// positions call it to report failures with a line number attached.
func Check(rec RouteRecord) (string, error) {
	return validateRecord(&rec)
}

// validateRecord returns the offending field path and cause, or ("", nil).
func validateRecord(rec *RouteRecord) (string, error) {
	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return "", err
		}
		fe := verrs[0]
		field := fieldPath(fe.Namespace())
		if fe.Tag() == "required" {
			return field, ErrMissingField
		}

		return field, fmt.Errorf("%w: %v", ErrInvalidCoordinate, fe.Value())
	}
	if rec.Origin.Code == rec.Destination.Code {
		return "destination.code", ErrSelfLoop
	}

	return "", nil
}

// fieldPath drops the root struct name: "RouteRecord.origin.code" -> "origin.code".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

// addRoute registers both endpoints and links them.
func (g *Graph) addRoute(rec *RouteRecord) {
	u := g.register(&rec.Origin)
	v := g.register(&rec.Destination)
	w := geo.Distance(
		geo.Coord{Lat: rec.Origin.Lat, Lon: rec.Origin.Lon},
		geo.Coord{Lat: rec.Destination.Lat, Lon: rec.Destination.Lon},
	)
	g.link(u, v, w)
}

// register returns the index of ep.Code, allocating a new arena slot if unseen.
func (g *Graph) register(ep *Endpoint) int {
	if i, ok := g.index[ep.Code]; ok {
		return i
	}
	i := len(g.codes)
	g.index[ep.Code] = i
	g.codes = append(g.codes, ep.Code)
	g.airports = append(g.airports, Airport{
		Code:    ep.Code,
		Name:    ep.Name,
		City:    ep.City,
		Country: ep.Country,
		Lat:     ep.Lat,
		Lon:     ep.Lon,
	})
	g.adj = append(g.adj, nil)
	g.slot = append(g.slot, make(map[int]int))

	return i
}

// link stores w under both u and v, overwriting an existing pair in place.
func (g *Graph) link(u, v int, w float64) {
	if p, ok := g.slot[u][v]; ok {
		g.adj[u][p].Weight = w
		g.adj[v][g.slot[v][u]].Weight = w
		return
	}
	g.slot[u][v] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	g.slot[v][u] = len(g.adj[v])
	g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	g.edges++
}
