// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/airgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start code is absent.
	// It is always joined with core.ErrUnknownCode.
	ErrStartVertexNotFound = errors.New("bfs: start airport not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a code the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a walk. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options controls how far a walk spreads through the network.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit, if set, runs as each airport is dequeued with its hop count.
	// An error stops the walk.
	OnVisit func(code string, hops int) error

	// MaxHops caps the number of connections from the start; 0 means no cap.
	MaxHops int

	// MaxLegKm, if positive, drops routes longer than this many kilometres.
	MaxLegKm float64

	// RouteFilter, if set, is asked once per candidate route (From is the
	// airport being expanded). Returning false leaves the route unused.
	RouteFilter func(r core.Edge) bool

	err error
}

// DefaultOptions returns a background context with no hop cap, no range cap
// and no filter.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(code string, hops int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxHops limits the walk to n connections from the start. n == 0 lifts
// the limit; a negative n is rejected.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithMaxLegKm restricts the walk to routes no longer than km, e.g. an
// aircraft's range. km must be positive and finite.
func WithMaxLegKm(km float64) Option {
	return func(o *Options) {
		if !(km > 0) || math.IsInf(km, 1) {
			o.err = fmt.Errorf("%w: max leg must be a positive distance, got %v", ErrOptionViolation, km)
			return
		}
		o.MaxLegKm = km
	}
}

// WithRouteFilter installs an arbitrary route predicate. It composes with
// WithMaxLegKm: a route must pass both.
func WithRouteFilter(fn func(r core.Edge) bool) Option {
	return func(o *Options) { o.RouteFilter = fn }
}

// allows reports whether the walk may follow r.
func (o *Options) allows(r core.Edge) bool {
	if o.MaxLegKm > 0 && r.Weight > o.MaxLegKm {
		return false
	}

	return o.RouteFilter == nil || o.RouteFilter(r)
}

// Result holds the outcome of a BFS traversal:
//   - Order: codes visited, in visit sequence.
//   - Depth: hop count of every reached code from the start.
//   - Parent: predecessor of every reached code except the start.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-hop path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Reached lists every visited airport except the start with its hop count,
// in visit order.
func (r *Result) Reached() []Hop {
	out := make([]Hop, 0, max(len(r.Order)-1, 0))
	for i, code := range r.Order {
		if i == 0 {
			continue
		}
		out = append(out, Hop{Code: code, Hops: r.Depth[code], Via: r.Parent[code]})
	}

	return out
}

// Hop is one airport reached by a walk.
type Hop struct {
	Code string `json:"code"`
	Hops int    `json:"hops"`
	Via  string `json:"via"` // previous airport on a fewest-hop path
}
