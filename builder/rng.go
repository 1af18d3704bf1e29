// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// rng.go - deterministic random sources.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand
//     between concurrent builder calls.

package builder

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed==0 or no RNG at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// drawCell returns a uniformly random cell; row first, as the visualizer draws.
func drawCell(r *rand.Rand, rows, cols int) (row, col int) {
	return r.Intn(rows), r.Intn(cols)
}
