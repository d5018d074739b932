// Package prim_kruskal defines result types, method selection and sentinel errors
// for minimum spanning tree computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/airgraph/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod is returned by Compute for a method name it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm run once per connected component.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a spanning tree (or forest): the selected routes in selection order
// and the sum of their weights in km.
type Result struct {
	TotalWeight float64     `json:"total_weight_km"`
	Edges       []core.Edge `json:"edges"`
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Prim).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Prim.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute returns the minimum spanning forest of the whole graph using the
// selected method. For MethodPrim the per-component trees from Forest are
// concatenated in component order.
//
// Note: optional scaffolding; Prim, Forest and Kruskal can be called directly.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		trees, err := Forest(g)
		if err != nil {
			return Result{}, err
		}
		return Merge(trees), nil
	default:
		return Result{}, ErrUnknownMethod
	}
}

// Merge concatenates several trees into one forest result.
func Merge(trees []Result) Result {
	out := Result{Edges: []core.Edge{}}
	for _, t := range trees {
		out.TotalWeight += t.TotalWeight
		out.Edges = append(out.Edges, t.Edges...)
	}

	return out
}
