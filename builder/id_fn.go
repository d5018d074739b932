// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// id_fn.go - airport code schemes for generated networks.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps an index to an airport code.
type IDFn func(idx int) string

// DefaultIDFn returns "A000", "A001", ... (zero-padded to three digits).
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("A%03d", idx)
}

// IATAIDFn returns three-letter codes "AAA", "AAB", ... "ZZZ" and wraps after 17576.
func IATAIDFn(idx int) string {
	if idx < 0 {
		idx = -idx
	}
	idx %= 26 * 26 * 26
	b := []byte{
		byte('A' + idx/(26*26)),
		byte('A' + (idx/26)%26),
		byte('A' + idx%26),
	}

	return string(b)
}

// PrefixIDFn returns codes prefix+index.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithIATAIDs selects IATAIDFn.
func WithIATAIDs() BuilderOption {
	return WithIDScheme(IATAIDFn)
}

// WithPrefixIDs selects PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
