// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRecords(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors emit route records between synthetic airports; the network itself
//     is always built by core.Build, so generated data takes the same path as real data.
//   - Determinism: same options/seed and constructor order => identical records.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// Constructor appends routes to the batch using the resolved builderConfig.
// Constructors MUST validate parameters before emitting anything and keep a
// stable emission order.
type Constructor func(b *batch, cfg builderConfig) error

// batch accumulates generated records. Airports are registered once per code
// so every record that mentions a code carries the same coordinates.
type batch struct {
	records  []core.RouteRecord
	airports map[string]core.Endpoint
}

// airport returns the endpoint for index i of an n-airport layout, creating it
// on first use.
func (b *batch) airport(cfg builderConfig, i, n int) core.Endpoint {
	code := cfg.idFn(i)
	if ep, ok := b.airports[code]; ok {
		return ep
	}
	pos := cfg.placeFn(i, n, cfg.rng)
	ep := core.Endpoint{
		Code:    code,
		Name:    "Synthetic " + code,
		City:    code,
		Country: cfg.country,
		Lat:     pos.Lat,
		Lon:     pos.Lon,
	}
	b.airports[code] = ep

	return ep
}

// route appends one record origin -> destination.
func (b *batch) route(from, to core.Endpoint) {
	b.records = append(b.records, core.RouteRecord{Origin: from, Destination: to})
}

// BuildRecords resolves the builder configuration from bopts and applies all
// constructors in order, returning the generated route records.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildRecords(bopts []BuilderOption, cons ...Constructor) ([]core.RouteRecord, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildRecords: %w", cfg.err)
	}
	b := &batch{airports: make(map[string]core.Endpoint)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRecords: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildRecords: %w", err)
		}
	}

	return b.records, nil
}

// BuildGraph is BuildRecords followed by core.BuildFromRecords.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	recs, err := BuildRecords(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.BuildFromRecords(recs)
}
