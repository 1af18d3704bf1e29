// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/step"
)

// requireRoleInvariants checks exactly one Start, one End, Start ≠ End and
// no wall on an endpoint.
func requireRoleInvariants(t *testing.T, g *grid.Grid) {
	t.Helper()
	starts, ends := 0, 0
	for i := range g.Nodes {
		switch g.Nodes[i].Role {
		case grid.RoleStart:
			starts++
		case grid.RoleEnd:
			ends++
		}
	}
	require.Equal(t, 1, starts, "exactly one start")
	require.Equal(t, 1, ends, "exactly one end")
	require.NotEqual(t, g.Start(), g.End())
	require.NotEqual(t, grid.RoleWall, g.At(g.Start()).Role)
	require.NotEqual(t, grid.RoleWall, g.At(g.End()).Role)
	require.NoError(t, g.Validate())
}

// TestGenerateGrid_Invariants sweeps seeds, sizes and both wall policies.
func TestGenerateGrid_Invariants(t *testing.T) {
	sizes := [][2]int{{1, 2}, {2, 1}, {2, 2}, {5, 7}, {20, 20}}
	policies := []builder.WallPolicy{builder.WallsIgnoreDuplicates, builder.WallsResample}
	for seed := int64(0); seed < 25; seed++ {
		for _, sz := range sizes {
			for _, p := range policies {
				g, err := builder.GenerateGrid(sz[0], sz[1],
					builder.WithSeed(seed), builder.WithWallPolicy(p), builder.WithWallDensity(0.45))
				require.NoError(t, err)
				require.Equal(t, sz[0], g.Rows)
				require.Equal(t, sz[1], g.Cols)
				requireRoleInvariants(t, g)
			}
		}
	}
}

// TestGenerateGrid_WallCounts compares both policies against the target.
func TestGenerateGrid_WallCounts(t *testing.T) {
	const rows, cols = 10, 10
	target := 20 // ⌊100·0.2⌋
	for seed := int64(1); seed <= 10; seed++ {
		ignore, err := builder.GenerateGrid(rows, cols, builder.WithSeed(seed))
		require.NoError(t, err)
		require.LessOrEqual(t, ignore.Walls(), target)

		resample, err := builder.GenerateGrid(rows, cols,
			builder.WithSeed(seed), builder.WithWallPolicy(builder.WallsResample))
		require.NoError(t, err)
		require.Equal(t, target, resample.Walls())
	}

	none, err := builder.GenerateGrid(rows, cols, builder.WithWallDensity(0))
	require.NoError(t, err)
	require.Zero(t, none.Walls())
}

// TestGenerateGrid_Deterministic locks same-seed reproducibility.
func TestGenerateGrid_Deterministic(t *testing.T) {
	a, err := builder.GenerateGrid(12, 9, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.GenerateGrid(12, 9, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	d1, err := builder.GenerateGrid(12, 9)
	require.NoError(t, err)
	d2, err := builder.GenerateGrid(12, 9, builder.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, d1.String(), d2.String(), "seed 0 is the default seed")
}

func TestGenerateGrid_Errors(t *testing.T) {
	for _, sz := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {1, 1}} {
		_, err := builder.GenerateGrid(sz[0], sz[1])
		require.ErrorIs(t, err, builder.ErrTooSmall)
		require.ErrorIs(t, err, step.ErrConfiguration)
	}
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithWallDensity(1) })
	require.Panics(t, func() { builder.WithWallDensity(-0.1) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWallPolicy(builder.WallPolicy(7)) })
}

func TestParseWallPolicy(t *testing.T) {
	p, err := builder.ParseWallPolicy("resample")
	require.NoError(t, err)
	require.Equal(t, builder.WallsResample, p)
	p, err = builder.ParseWallPolicy("")
	require.NoError(t, err)
	require.Equal(t, builder.WallsIgnoreDuplicates, p)
	_, err = builder.ParseWallPolicy("sometimes")
	require.ErrorIs(t, err, step.ErrConfiguration)
}

// TestGenerateArray_Range checks length and the half-open value range.
func TestGenerateArray_Range(t *testing.T) {
	vals, err := builder.GenerateArray(500, 7, builder.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, vals, 500)
	seen := make(map[int]bool)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
		seen[v] = true
	}
	require.Len(t, seen, 7, "500 draws over 7 values should hit every value")

	again, err := builder.GenerateArray(500, 7, builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, vals, again)

	_, err = builder.GenerateArray(0, 10)
	require.ErrorIs(t, err, step.ErrConfiguration)
	_, err = builder.GenerateArray(10, 0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestNewText(t *testing.T) {
	_, err := builder.NewText("abc", "")
	require.ErrorIs(t, err, builder.ErrEmptyPattern)
	require.ErrorIs(t, err, step.ErrConfiguration)

	tx, err := builder.NewText("héllo", "llo")
	require.NoError(t, err)
	n, m := tx.Len()
	require.Equal(t, 5, n)
	require.Equal(t, 3, m)
	require.True(t, tx.Matchable())

	// copies, not views
	r := tx.Text()
	r[0] = 'X'
	require.Equal(t, 'h', tx.Text()[0])

	long, err := builder.NewText("ab", "abc")
	require.NoError(t, err)
	require.False(t, long.Matchable())
}
