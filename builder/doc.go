// SPDX-License-Identifier: MIT

// Package builder constructs the models an engine runs over: a grid with
// Start, End and walls, an array of random values, and a text/pattern pair.
//
// What:
//
//   - GenerateGrid(rows, cols, opts...) places Start uniformly, resamples End
//     until it differs from Start, then draws ⌊rows·cols·density⌋ wall cells.
//   - GenerateArray(n, maxValue, opts...) draws n values uniform in [0,maxValue).
//   - NewText(text, pattern) freezes a text/pattern pair as rune slices.
//
// Wall draws (WallPolicy):
//
//   - WallsIgnoreDuplicates (default): a draw landing on Start, End or an
//     existing wall is dropped, so the grid may hold fewer walls than the
//     target. This mirrors the behavior the visualizer has always had.
//   - WallsResample: draws repeat until the target number of distinct walls
//     is placed, capped by the number of free cells.
//
// Determinism:
//
//   - No builder reads the clock. Without WithSeed or WithRand, builders use
//     a fixed default seed, so two calls with no options agree.
//   - WithSeed(0) means the default seed as well.
//
// Errors:
//
//   - ErrTooSmall: rows, cols, n or maxValue is not positive. It wraps
//     step.ErrConfiguration.
package builder
