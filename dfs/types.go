// Package dfs defines options, results and sentinel errors for depth-first
// traversal of the route network.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Critical.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start code is absent from the registry.
	// It is always joined with core.ErrUnknownCode.
	ErrStartVertexNotFound = errors.New("dfs: start airport not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS via functional arguments. An invalid Option is recorded
// and surfaced as ErrOptionViolation when DFS runs.
type Option func(*Options)

// Options holds the traversal parameters.
// Complexity remains O(V+E) when hooks and filters are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when an airport is discovered (pre-order).
	// Returning an error aborts the traversal.
	OnVisit func(code string, depth int) error

	// OnExit, if non-nil, runs after all descendants of an airport were explored
	// (post-order), before it is appended to Result.Order.
	OnExit func(code string) error

	// MaxDepth, if non-negative, limits recursion to that many hops.
	// 0 visits only the start airport. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is asked before following curr->neighbor.
	// Returning false skips that route and counts it in Result.SkippedNeighbors.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal restarts from every unvisited airport in insertion order,
	// producing a DFS forest over all components.
	FullTraversal bool

	err error
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(code string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. Limits below -1 are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1, got %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a route filter.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal; the start code is then ignored.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order lists airports in the sequence they finished (post-order).
	Order []string

	// Depth maps each visited code to its hop count from the root of its tree.
	Depth map[string]int

	// Parent maps each visited code to the code it was discovered from.
	// Tree roots are absent.
	Parent map[string]string

	// Roots lists the airport each DFS tree started from, in traversal order.
	Roots []string

	// SkippedNeighbors counts routes rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether code was reached.
func (r *Result) Visited(code string) bool {
	_, ok := r.Depth[code]
	return ok
}
