// SPDX-License-Identifier: MIT

// Package sorting sorts an Array in place and reports every comparison and
// every write as a step.Step.
//
// Run(a, algo, opts...) validates synchronously and returns a single-use
// iter.Seq[step.Step] that ends in Done (or a Fault). Every write to
// a.Values is reported by exactly one Swap or Overwrite step, so replaying
// the steps onto a copy of the input reproduces the terminal array.
//
// Algorithms:
//
//	Selection  O(n²)        Compare(min, j) per scan, one Swap per pass.
//	Bubble     O(n²)        adjacent Compare/Swap, stops after a clean pass.
//	Insertion  O(n²)        shift-and-insert, Overwrite only.
//	Merge      O(n log n)   top-down, stable, Overwrite per placed element.
//	Quick      O(n²) worst  Lomuto partition, pivot = last element.
//	Counting   O(n + k)     histogram and prefix sums as Table steps,
//	                        stable placement into Aux, copy-back to Values.
//	Heap       O(n log n)   bottom-up max-heap, then root/last swaps.
//
// Merge and Quick recurse; their depth is bounded by WithMaxDepth and a
// violation ends the run with a Fault carrying step.ErrRecursionDepth.
package sorting
