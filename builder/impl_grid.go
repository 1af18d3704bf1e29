// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_grid.go - GenerateGrid(rows, cols).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooSmall).
//   • Start is drawn uniformly; End is redrawn until End ≠ Start.
//   • target = ⌊rows·cols·density⌋ wall draws, handled per WallPolicy.
//   • The returned grid satisfies every grid role invariant.
//
// Complexity:
//   • Time: O(rows·cols + target) for WallsIgnoreDuplicates; expected
//     O(rows·cols·log(rows·cols)) for WallsResample near full density.
//   • Space: O(rows·cols).
//
// Determinism:
//   • Draw order is Start, End (with resamples), then walls, each as
//     (row, col) pairs. A fixed seed yields a fixed grid.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/grid"
)

const methodGrid = "GenerateGrid"

// GenerateGrid builds a rows×cols grid with random Start, End and walls.
func GenerateGrid(rows, cols int, opts ...Option) (*grid.Grid, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	r := cfg.rng

	sr, sc := drawCell(r, rows, cols)
	start := grid.Coord{Row: sr, Col: sc}
	end := start
	for end == start {
		er, ec := drawCell(r, rows, cols)
		end = grid.Coord{Row: er, Col: ec}
	}

	target := int(math.Floor(float64(rows*cols) * cfg.wallDensity))
	taken := make(map[grid.Coord]bool, target+2)
	taken[start], taken[end] = true, true

	walls := make([]grid.Coord, 0, target)
	switch cfg.wallPolicy {
	case WallsResample:
		if free := rows*cols - 2; target > free {
			target = free
		}
		for len(walls) < target {
			wr, wc := drawCell(r, rows, cols)
			w := grid.Coord{Row: wr, Col: wc}
			if taken[w] {
				continue
			}
			taken[w] = true
			walls = append(walls, w)
		}
	default:
		for i := 0; i < target; i++ {
			wr, wc := drawCell(r, rows, cols)
			w := grid.Coord{Row: wr, Col: wc}
			if taken[w] {
				continue
			}
			taken[w] = true
			walls = append(walls, w)
		}
	}

	g, err := grid.New(rows, cols, start, end, walls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrid, err)
	}

	return g, nil
}
