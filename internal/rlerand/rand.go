// Package rlerand wraps pion/randutil's math/rand-backed generator for the
// non-core, demo-only randomness: picking a starting fragment ID and
// jittering burst-budget choices. No package in this module imports it;
// in particular the wire codec and TX/RX engines do not — they are
// deterministic given their inputs, per §5.
package rlerand

import "github.com/pion/randutil"

var global = randutil.NewMathRandomGenerator()

// FragID returns a pseudo-random fragment ID in [0, numContexts).
func FragID(numContexts int) uint8 {
	return uint8(global.Intn(numContexts)) // nolint: gosec
}

// JitterBudget returns a pseudo-random burst budget in [min, max].
func JitterBudget(minBudget, maxBudget int) int {
	if maxBudget <= minBudget {
		return minBudget
	}

	return minBudget + global.Intn(maxBudget-minBudget+1)
}
