// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// errors.go - sentinel errors. Constructors wrap them with their method name.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("builder: invalid option value")
