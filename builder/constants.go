// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// constants.go - method names and topology minimums.

package builder

// Method names used as error prefixes and as CLI topology names.
const (
	MethodChain    = "chain"
	MethodCycle    = "cycle"
	MethodStar     = "star"
	MethodComplete = "complete"
	MethodRandom   = "random"
)

// Topology minimums.
const (
	MinChainNodes    = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 2
	MinRandomNodes   = 2
)

// defaultRadiusDeg is the default ring radius in degrees.
const defaultRadiusDeg = 10.0
